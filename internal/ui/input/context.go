package input

// Snapshot implements the Context interface from values captured before a key is handled
type Snapshot struct {
	Len     int
	Focused bool
	Text    bool
	Search  string
}

func (s Snapshot) ViewLen() int      { return s.Len }
func (s Snapshot) HasFocus() bool    { return s.Focused }
func (s Snapshot) TextPayload() bool { return s.Text }
func (s Snapshot) Query() string     { return s.Search }
