package browser

import (
	"fmt"
	"strings"

	"llmsbrowse/internal/ui/viewmodels"
	"llmsbrowse/internal/ui/views"
)

// ViewState returns the view-ready state of the pane
func (c *Component[T]) ViewState() viewmodels.ViewState[T] {
	return viewmodels.BuildViewState(c.coord)
}

// View renders the pane at its current size
func (c *Component[T]) View() string {
	vs := c.ViewState()

	var b strings.Builder
	b.WriteString(c.searchLine())
	b.WriteString("\n")
	b.WriteString(views.RenderStatus(c.statusText(vs), c.loadErr != nil, c.styles))
	b.WriteString("\n\n")

	g := c.gridLayout()
	b.WriteString(c.grid(vs, g))
	b.WriteString("\n\n")

	if vs.TotalPages > 1 {
		b.WriteString(views.RenderPageNav(vs.Page, vs.TotalPages, c.coord.Navigation.View(), c.styles))
	}

	base := b.String()
	if !vs.ModalOpen {
		return base
	}

	m := views.NewModalLayout(c.width, c.height)
	return views.Overlay(base, c.modal(vs, m), m.Box, c.width, c.height, c.styles.Backdrop)
}

func (c *Component[T]) searchLine() string {
	prompt, value := "", ""
	if ti := c.input.TextInput(); ti != nil {
		prompt, value = c.input.Prompt(), ti.View()
	}
	return views.RenderSearchLine(prompt, value, c.coord.Search.Query(), c.Searching(), c.styles)
}

// StatusText summarizes what the grid shows
func (c *Component[T]) StatusText() string {
	return c.statusText(c.ViewState())
}

func (c *Component[T]) statusText(vs viewmodels.ViewState[T]) string {
	noun := c.variant.Noun
	switch {
	case c.loadErr != nil:
		return fmt.Sprintf("Failed to load %s: %v", noun, c.loadErr)
	case c.loading && vs.Total == 0:
		return fmt.Sprintf("Loading %s…", noun)
	case vs.Count == 0:
		return fmt.Sprintf("0 of %d %s", vs.Total, noun)
	}

	text := fmt.Sprintf("Showing %d-%d of %d %s", vs.Start+1, vs.End, vs.Count, noun)
	if vs.IsFiltered() {
		text += fmt.Sprintf(" (filtered from %d total)", vs.Total)
	}
	return text
}

// EmptyText is shown in place of the grid when there is nothing to show
func (c *Component[T]) EmptyText() string {
	switch {
	case c.loading || c.loadErr != nil:
		return ""
	case c.coord.Search.IsFiltered():
		return fmt.Sprintf("No %s found matching your search.", c.variant.Noun)
	default:
		return fmt.Sprintf("No %s available.", c.variant.Noun)
	}
}

func (c *Component[T]) grid(vs viewmodels.ViewState[T], g views.GridLayout) string {
	if len(vs.Items) == 0 {
		text := c.styles.Dim.Render(c.EmptyText())
		return views.RenderGrid([]string{text}, g)
	}

	tiles := make([]string, 0, len(vs.Items))
	for i, item := range vs.Items {
		content := c.variant.Render.Tile(item)
		if vs.IsCopied(item.ItemID()) {
			content.Badge = "✓ copied"
		}
		tiles = append(tiles, views.RenderTile(content, g.TileWidth(), i == vs.Focus, vs.Query, c.styles))
	}
	return views.RenderGrid(tiles, g)
}

func (c *Component[T]) modal(vs viewmodels.ViewState[T], m views.ModalLayout) string {
	footer := c.variant.Render.ModalFooter(vs.ModalItem, ModalState{
		Index:   vs.ModalIndex,
		Total:   vs.Count,
		HasPrev: vs.HasPrev,
		HasNext: vs.HasNext,
	})
	if vs.IsCopied(vs.ModalItem.ItemID()) {
		footer.Badge = "✓ Copied"
	}
	return views.RenderModal(m, c.variant.Render.ModalTitle(vs.ModalItem), c.body.View(), footer, c.styles)
}
