package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchPaneWraps(t *testing.T) {
	s := NewAppState([]string{"prompts", "gallery"})
	assert.Equal(t, "prompts", s.ActiveName())

	assert.True(t, s.SwitchPane(1))
	assert.Equal(t, "gallery", s.ActiveName())
	assert.True(t, s.SwitchPane(1))
	assert.Equal(t, "prompts", s.ActiveName())
	assert.True(t, s.SwitchPane(-1))
	assert.Equal(t, "gallery", s.ActiveName())
}

func TestSwitchPaneSinglePane(t *testing.T) {
	s := NewAppState([]string{"prompts"})
	assert.False(t, s.SwitchPane(1))
	assert.Equal(t, 0, s.Active)

	assert.Equal(t, "", NewAppState(nil).ActiveName())
}

func TestSelectPane(t *testing.T) {
	s := NewAppState([]string{"prompts", "gallery"})
	assert.False(t, s.SelectPane(0), "already active")
	assert.False(t, s.SelectPane(5))
	assert.True(t, s.SelectPane(1))
	assert.Equal(t, 1, s.Active)
}

func TestHelpScrollIsClamped(t *testing.T) {
	s := NewAppState(nil)
	s.ToggleHelp()
	assert.True(t, s.ShowHelp)

	s.ScrollHelp(-3, 10)
	assert.Equal(t, 0, s.HelpScrollOffset)
	s.ScrollHelp(25, 10)
	assert.Equal(t, 10, s.HelpScrollOffset)

	s.ToggleHelp()
	assert.False(t, s.ShowHelp)
	assert.Equal(t, 0, s.HelpScrollOffset)
}

func TestClearStatusOnlyClearsItsOwnMessage(t *testing.T) {
	s := NewAppState(nil)
	first := s.SetStatus("copied", false)
	second := s.SetStatus("failed", true)

	assert.False(t, s.ClearStatus(first), "a newer message replaced it")
	assert.Equal(t, "failed", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	assert.True(t, s.ClearStatus(second))
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
}
