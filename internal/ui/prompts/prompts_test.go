package prompts

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmsbrowse/internal/config"
	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/browser"
	"llmsbrowse/internal/ui/logic"
)

func TestTileUsesFirstTextLine(t *testing.T) {
	r := NewRenderer(false, "")

	tile := r.Tile(domain.Prompt{ID: "coder", Name: "Coder", Value: "\n# You are a careful engineer.\nMore."})
	assert.Equal(t, "Coder", tile.Title)
	assert.Equal(t, "You are a careful engineer.", tile.Subtitle)

	tile = r.Tile(domain.Prompt{ID: "empty", Name: "Empty"})
	assert.Equal(t, "empty", tile.Subtitle)
}

func TestPlainBodyWrapsToWidth(t *testing.T) {
	r := NewRenderer(false, "")
	p := domain.Prompt{ID: "p", Value: strings.Repeat("word ", 40) + strings.Repeat("x", 50)}

	body := r.ModalBody(p, 20)
	for _, line := range strings.Split(body, "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 20, line)
	}
	assert.Contains(t, body, "word")
}

func TestMarkdownBodyKeepsText(t *testing.T) {
	r := NewRenderer(true, "notty")
	p := domain.Prompt{ID: "md", Value: "# Role\n\nYou answer **briefly**."}

	body := r.ModalBody(p, 40)
	assert.Contains(t, body, "Role")
	assert.Contains(t, body, "briefly")
	assert.Equal(t, body, r.ModalBody(p, 40), "rendered once per width")
	assert.Len(t, r.cache, 1)

	r.ModalBody(p, 60)
	assert.Len(t, r.cache, 1, "one entry per prompt")
	assert.Equal(t, 60, r.cache["md"].width)
}

func TestBodyFollowsChangedText(t *testing.T) {
	r := NewRenderer(false, "")

	assert.Contains(t, r.ModalBody(domain.Prompt{ID: "a", Value: "OLDTEXT"}, 40), "OLDTEXT")
	body := r.ModalBody(domain.Prompt{ID: "a", Value: "NEWTEXT"}, 40)
	assert.Contains(t, body, "NEWTEXT")
	assert.NotContains(t, body, "OLDTEXT")
	assert.Len(t, r.cache, 1)
}

func TestReloadRefreshesOpenPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	write := func(value string) {
		data := `[{"id":"a","name":"Alpha","value":"` + value + `"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	}
	cfg := config.DefaultConfig()
	cfg.UI.RenderMarkdown = false

	write("OLDTEXT")
	c := New(path, cfg, browser.Options{Context: context.Background(), PerPage: 12, Columns: 3})
	c.SetSize(100, 40)
	c.Update(c.Reload()())

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	c.HandleKey(enter)
	require.True(t, c.ModalOpen())
	require.Contains(t, c.View(), "OLDTEXT")

	// Reload while the viewer stays open
	write("NEWTEXT")
	c.Update(c.Reload()())
	require.True(t, c.ModalOpen())
	assert.NotContains(t, c.View(), "OLDTEXT")

	// And after closing and reopening
	c.HandleKey(esc)
	c.HandleKey(enter)
	view := c.View()
	assert.Contains(t, view, "NEWTEXT")
	assert.NotContains(t, view, "OLDTEXT")
}

func TestFooterHidesArrowsAtEnds(t *testing.T) {
	r := NewRenderer(false, "")
	p := domain.Prompt{ID: "p1"}

	f := r.ModalFooter(p, browser.ModalState{Index: 0, Total: 5, HasPrev: false, HasNext: true})
	assert.Equal(t, "1 / 5 · p1", f.Center)
	assert.False(t, f.Prev)
	assert.True(t, f.Next)
}

func TestVariantDefaults(t *testing.T) {
	v := NewVariant("prompts.json", nil)
	assert.Equal(t, Name, v.Name)
	assert.Equal(t, logic.NavBounded, v.Policy)
	assert.True(t, v.TextPayload)
	assert.Equal(t, "prompts.json", v.Source)

	cfg := config.DefaultConfig()
	cfg.Prompts.Wrap = true
	v = NewVariant("prompts.json", cfg)
	assert.Equal(t, logic.NavWrap, v.Policy)
}

func TestVariantLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	data := `[{"id":"a","name":"Alpha","value":"one"},{"id":"b","name":"Beta","value":"two"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	items, err := NewVariant(path, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Beta", items[1].Name)
}
