package state

// AppState contains the state owned by the root model. Each pane keeps its
// own collection state.
type AppState struct {
	// Panes
	Panes  []string // pane names in tab order
	Active int      // index into Panes

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int  // scroll offset for help popup
	InPagerMode      bool // the external pager owns the terminal
	StatusMessage    string
	StatusIsError    bool

	statusSeq uint64
}

// NewAppState creates a new application state
func NewAppState(panes []string) *AppState {
	return &AppState{
		Panes: append([]string(nil), panes...),
	}
}

// ActiveName returns the name of the focused pane
func (s *AppState) ActiveName() string {
	if s.Active < 0 || s.Active >= len(s.Panes) {
		return ""
	}
	return s.Panes[s.Active]
}

// SwitchPane moves focus by delta, wrapping around. It reports whether the
// focus changed.
func (s *AppState) SwitchPane(delta int) bool {
	n := len(s.Panes)
	if n < 2 || delta == 0 {
		return false
	}
	s.Active = ((s.Active+delta)%n + n) % n
	return true
}

// SelectPane focuses the pane at index i
func (s *AppState) SelectPane(i int) bool {
	if i < 0 || i >= len(s.Panes) || i == s.Active {
		return false
	}
	s.Active = i
	return true
}

// ToggleHelp shows or hides the help popup
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// ScrollHelp moves the help popup by delta lines within [0, maxOffset]
func (s *AppState) ScrollHelp(delta, maxOffset int) {
	s.HelpScrollOffset = min(max(s.HelpScrollOffset+delta, 0), max(maxOffset, 0))
}

// SetStatus replaces the status message. The returned sequence number
// identifies this message for ClearStatus.
func (s *AppState) SetStatus(msg string, isErr bool) uint64 {
	s.statusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isErr
	return s.statusSeq
}

// ClearStatus clears the status message if it is still the one set with seq
func (s *AppState) ClearStatus(seq uint64) bool {
	if seq != s.statusSeq || s.StatusMessage == "" {
		return false
	}
	s.StatusMessage = ""
	s.StatusIsError = false
	return true
}
