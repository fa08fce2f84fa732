package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"llmsbrowse/internal/ui/services/lightbox"
	"llmsbrowse/internal/ui/views"
)

func isWheel(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// HandleMouse handles a mouse event with coordinates relative to the pane
func (c *Component[T]) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	defer c.sync()

	if c.coord.Lightbox.IsOpen() {
		return c.handleModalMouse(msg)
	}

	g := c.gridLayout()
	switch {
	case isWheel(msg):
		// Background paging stops while any modal holds the scroll lock
		if c.coord.Lightbox.Lock().Locked() {
			return nil
		}
		if msg.Button == tea.MouseButtonWheelDown {
			c.coord.Navigation.NextPage()
		} else {
			c.coord.Navigation.PrevPage()
		}

	case isLeftPress(msg):
		prev, next := views.PageNavZones(g, c.coord.Navigation.Page(), c.coord.Navigation.TotalPages())
		switch {
		case prev.Contains(msg.X, msg.Y):
			c.coord.Navigation.PrevPage()
		case next.Contains(msg.X, msg.Y):
			c.coord.Navigation.NextPage()
		default:
			slot := g.SlotAt(msg.X, msg.Y)
			if slot >= 0 && slot < len(c.coord.PageItems()) {
				c.coord.Navigation.FocusTile(slot)
				c.coord.OpenFocused()
			}
		}
	}
	return nil
}

func (c *Component[T]) handleModalMouse(msg tea.MouseMsg) tea.Cmd {
	m := views.NewModalLayout(c.width, c.height)

	if isWheel(msg) {
		if !m.Box.Contains(msg.X, msg.Y) {
			return nil
		}
		var cmd tea.Cmd
		c.body, cmd = c.body.Update(msg)
		return cmd
	}
	if !isLeftPress(msg) {
		return nil
	}

	n := c.coord.Search.Count()
	switch {
	case m.CloseRect().Contains(msg.X, msg.Y):
		c.coord.Lightbox.Close(lightbox.ReasonButton)
	case !m.Box.Contains(msg.X, msg.Y):
		c.coord.Lightbox.Close(lightbox.ReasonBackdrop)
	case m.PrevRect().Contains(msg.X, msg.Y) && c.coord.Lightbox.HasPrev(n):
		c.coord.Prev()
	case m.NextRect().Contains(msg.X, msg.Y) && c.coord.Lightbox.HasNext(n):
		c.coord.Next()
	}
	// Clicks inside the content do nothing
	return nil
}

func (c *Component[T]) gridLayout() views.GridLayout {
	return views.NewGridLayout(c.width, c.columns, c.coord.Navigation.PerPage())
}
