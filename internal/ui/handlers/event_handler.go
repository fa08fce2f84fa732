package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/eventbus"
	"llmsbrowse/internal/ui/state"
)

// StatusTTL is how long a status message stays on screen
const StatusTTL = 3 * time.Second

// ClearStatusMsg clears the status message it was scheduled for
type ClearStatusMsg struct {
	Seq uint64
}

// ReloadFunc reloads the panes reading from path. It returns nil when no
// pane does.
type ReloadFunc func(path string) tea.Cmd

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	reload ReloadFunc
	ttl    time.Duration
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, reload ReloadFunc) *EventHandler {
	return &EventHandler{
		state:  appState,
		reload: reload,
		ttl:    StatusTTL,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	log.Debug().Str("type", string(event.Type())).Msg("domain event")

	switch e := event.(type) {
	case eventbus.SourceChangedEvent:
		if h.reload == nil {
			return nil
		}
		cmd := h.reload(e.Path)
		if cmd == nil {
			return nil
		}
		return tea.Batch(cmd, h.Status(fmt.Sprintf("Reloading %s", filepath.Base(e.Path)), false))

	case eventbus.ItemCopiedEvent:
		return h.Status(fmt.Sprintf("Copied %s to clipboard", e.ItemID), false)

	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.Status(fmt.Sprintf("Error: %s: %v", e.Message, e.Err), true)
		}
		return h.Status(fmt.Sprintf("Error: %s", e.Message), true)

	case eventbus.ConfigSavedEvent:
		return h.Status(fmt.Sprintf("Config saved to %s", e.Path), false)
	}

	return nil
}

// HandleClear clears the status message if msg still matches it
func (h *EventHandler) HandleClear(msg ClearStatusMsg) {
	h.state.ClearStatus(msg.Seq)
}

// Status shows text in the status line until the returned timer clears it
func (h *EventHandler) Status(text string, isErr bool) tea.Cmd {
	seq := h.state.SetStatus(text, isErr)
	return tea.Tick(h.ttl, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// SamePath reports whether two source locations name the same file
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
