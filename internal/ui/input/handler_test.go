package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmsbrowse/internal/ui/input/types"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridKeys(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 15, Focused: true, Text: true}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "right"}, actions[0])

	actions, _ = h.HandleKey(runeKey("]"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "pagedown"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.OpenItemAction{}, actions[0])

	actions, _ = h.HandleKey(runeKey("c"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CopyAction{}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SwitchPaneAction{Delta: -1}, actions[0])
}

func TestCopyIgnoredWithoutTextPayload(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runeKey("c"), Snapshot{Len: 3, Focused: true})
	assert.Empty(t, actions)
}

func TestEscapeClearsOnlyActiveQuery(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, Snapshot{Len: 3})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, Snapshot{Len: 1, Search: "sql"})
	require.Len(t, actions, 1)
	assert.IsType(t, types.ClearQueryAction{}, actions[0])
}

func TestSearchModeTyping(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 5, Search: "py"}

	_, cmd := h.HandleKey(runeKey("/"), ctx)
	assert.NotNil(t, cmd, "entering search starts the cursor blink")
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "py", h.TextInput().Value(), "search starts from the active query")

	actions, _ := h.HandleKey(runeKey("t"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "pyt"}, actions[0])

	// q is text while searching, not quit
	actions, _ = h.HandleKey(runeKey("q"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "pytq"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "pytq", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeEscape(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 5}

	h.HandleKey(runeKey("/"), ctx)
	h.HandleKey(runeKey("x"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestModalListenerPairing(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 3, Focused: true, Text: true}
	listener := h.Listener()

	for i := 0; i < 2; i++ {
		h.SetMode(types.ModeModal, ctx)
		h.SetMode(types.ModeModal, ctx)
		assert.True(t, listener.Attached())

		h.SetMode(types.ModeNormal, ctx)
		assert.False(t, listener.Attached())
	}

	attaches, detaches := listener.Counts()
	assert.Equal(t, 2, attaches)
	assert.Equal(t, 2, detaches)
}

func TestModalKeys(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 3, Focused: true, Text: true}
	h.SetMode(types.ModeModal, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ModalNextAction{}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ModalPrevAction{}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ScrollModalAction{}, actions[0])

	// Grid keys are swallowed while the modal is open
	actions, _ = h.HandleKey(runeKey("q"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runeKey("/"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeModal, h.CurrentMode())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CloseModalAction{}, actions[0])
}

func TestModalArrowsNeedSeveralItems(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 1, Focused: true}
	h.SetMode(types.ModeModal, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runeKey("c"), ctx)
	assert.Empty(t, actions, "copy needs a text payload")
}

func TestResetDetachesListener(t *testing.T) {
	h := New()
	ctx := Snapshot{Len: 2}
	h.SetMode(types.ModeModal, ctx)
	h.Reset(ctx)

	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	_, detaches := h.Listener().Counts()
	assert.Equal(t, 1, detaches)
}
