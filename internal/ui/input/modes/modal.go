package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"llmsbrowse/internal/ui/input/types"
)

// ModalMode is the key listener of an open modal. Entering the mode attaches
// it and leaving detaches it; the counters let callers verify the pairing.
type ModalMode struct {
	keys     types.KeyMap
	attached bool
	attaches int
	detaches int
}

func NewModalMode(keys types.KeyMap) *ModalMode {
	return &ModalMode{keys: keys}
}

func (m *ModalMode) Name() string {
	return "modal"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	if !m.attached {
		m.attached = true
		m.attaches++
	}
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	if m.attached {
		m.attached = false
		m.detaches++
	}
	return nil
}

// Attached reports whether the listener is live
func (m *ModalMode) Attached() bool { return m.attached }

// Counts returns how many times the listener was attached and detached
func (m *ModalMode) Counts() (attaches, detaches int) {
	return m.attaches, m.detaches
}

// HandleKey consumes every key while the modal is open so nothing reaches the grid
func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if !m.attached {
		return nil, false
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Close):
		return []types.Action{types.CloseModalAction{}}, true

	case key.Matches(msg, k.Next):
		if ctx.ViewLen() > 1 {
			return []types.Action{types.ModalNextAction{}}, true
		}

	case key.Matches(msg, k.Prev):
		if ctx.ViewLen() > 1 {
			return []types.Action{types.ModalPrevAction{}}, true
		}

	case key.Matches(msg, k.Copy):
		if ctx.TextPayload() {
			return []types.Action{types.CopyAction{}}, true
		}

	case key.Matches(msg, k.Pager):
		if ctx.TextPayload() {
			return []types.Action{types.OpenPagerAction{}}, true
		}

	case key.Matches(msg, k.Scroll):
		if ctx.TextPayload() {
			return []types.Action{types.ScrollModalAction{Key: msg}}, true
		}
	}

	return nil, true
}
