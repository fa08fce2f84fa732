package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"llmsbrowse/internal/ui/input/types"
)

// SearchMode edits the live filter query. It starts from the active query.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.Placeholder = "name, id or content"
		m.textInput.SetValue(ctx.Query())
		m.textInput.CursorEnd()
	}
	return nil
}
