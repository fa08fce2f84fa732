package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota // grid browsing
	ModeSearch
	ModeModal
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeModal:
		return "modal"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to browser state needed for input handling
type Context interface {
	// ViewLen is the size of the filtered view
	ViewLen() int
	// HasFocus reports whether a grid tile is focused
	HasFocus() bool
	// TextPayload reports whether items carry copyable text
	TextPayload() bool
	// Query returns the active search query
	Query() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
