package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the browser understands. It doubles as the
// source for the help bar.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	First     key.Binding
	Last      key.Binding
	Open      key.Binding
	Search    key.Binding
	Clear     key.Binding
	Copy      key.Binding
	Pager     key.Binding
	Reload    key.Binding
	Help      key.Binding
	Tab       key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// modal
	Close  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Scroll key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextPage:  key.NewBinding(key.WithKeys("pgdown", "]", "n"), key.WithHelp("n/]", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("pgup", "[", "p"), key.WithHelp("p/[", "prev page")),
		First:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		Last:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Copy:      key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "copy")),
		Pager:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pager")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Tab:       key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j", "pgup", "pgdown", "home", "end"), key.WithHelp("↑/↓", "scroll")),
	}
}

// GridHelp is the short help shown under the grid
type GridHelp struct {
	Keys     KeyMap
	TextItem bool
	Tabs     bool
}

func (h GridHelp) ShortHelp() []key.Binding {
	b := []key.Binding{h.Keys.Open, h.Keys.Search, h.Keys.NextPage, h.Keys.PrevPage}
	if h.TextItem {
		b = append(b, h.Keys.Copy)
	}
	if h.Tabs {
		b = append(b, h.Keys.Tab)
	}
	return append(b, h.Keys.Help, h.Keys.Quit)
}

func (h GridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Keys.Up, h.Keys.Down, h.Keys.Left, h.Keys.Right},
		{h.Keys.NextPage, h.Keys.PrevPage, h.Keys.First, h.Keys.Last},
		{h.Keys.Open, h.Keys.Search, h.Keys.Clear, h.Keys.Copy, h.Keys.Pager},
		{h.Keys.Reload, h.Keys.Tab, h.Keys.Help, h.Keys.Quit},
	}
}

// ModalHelp is the short help shown while the modal is open
type ModalHelp struct {
	Keys     KeyMap
	TextItem bool
	Multi    bool // more than one item in view
}

func (h ModalHelp) ShortHelp() []key.Binding {
	b := []key.Binding{h.Keys.Close}
	if h.Multi {
		b = append(b, h.Keys.Prev, h.Keys.Next)
	}
	if h.TextItem {
		b = append(b, h.Keys.Copy, h.Keys.Pager, h.Keys.Scroll)
	}
	return b
}

func (h ModalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
