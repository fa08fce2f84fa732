package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"llmsbrowse/internal/ui/input/types"
)

// NormalMode handles grid browsing
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Clear):
		// Esc only means something while a query is active
		if ctx.Query() == "" {
			return nil, false
		}
		return []types.Action{types.ClearQueryAction{}}, true

	case key.Matches(msg, k.Up):
		return navigate("up"), true
	case key.Matches(msg, k.Down):
		return navigate("down"), true
	case key.Matches(msg, k.Left):
		return navigate("left"), true
	case key.Matches(msg, k.Right):
		return navigate("right"), true
	case key.Matches(msg, k.NextPage):
		return navigate("pagedown"), true
	case key.Matches(msg, k.PrevPage):
		return navigate("pageup"), true
	case key.Matches(msg, k.First):
		return navigate("home"), true
	case key.Matches(msg, k.Last):
		return navigate("end"), true

	case key.Matches(msg, k.Open):
		if !ctx.HasFocus() {
			return nil, false
		}
		return []types.Action{types.OpenItemAction{}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, k.Copy):
		if !ctx.TextPayload() || !ctx.HasFocus() {
			return nil, false
		}
		return []types.Action{types.CopyAction{}}, true

	case key.Matches(msg, k.Pager):
		if !ctx.TextPayload() || !ctx.HasFocus() {
			return nil, false
		}
		return []types.Action{types.OpenPagerAction{}}, true

	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.Tab):
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		return []types.Action{types.SwitchPaneAction{Delta: delta}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
