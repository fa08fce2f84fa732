package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	appTitle      = "llmsbrowse"
	prevLabel     = "‹ prev"
	nextLabel     = "next ›"
	navLabelWidth = 6
	navSep        = "  "
)

// RenderTabs renders the pane switcher
func RenderTabs(names []string, active int, s *Styles) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			parts = append(parts, s.TabActive.Render(name))
		} else {
			parts = append(parts, s.Tab.Render(name))
		}
	}
	return s.Title.Render(appTitle) + "  " + strings.Join(parts, " ")
}

// TabZones returns the click area of each tab on row 0
func TabZones(names []string) []Rect {
	zones := make([]Rect, 0, len(names))
	x := runewidth.StringWidth(appTitle) + 2
	for _, name := range names {
		w := runewidth.StringWidth(name) + 2
		zones = append(zones, Rect{X: x, Y: 0, W: w, H: 1})
		x += w + 1
	}
	return zones
}

func pageCounter(page, total int) string {
	return fmt.Sprintf("%d / %d", page, total)
}

// RenderPageNav renders "‹ prev  p / t  next ›" with disabled ends at the bounds
func RenderPageNav(page, total int, dots string, s *Styles) string {
	prev := s.Nav.Render(prevLabel)
	if page <= 1 {
		prev = s.NavDisabled.Render(prevLabel)
	}
	next := s.Nav.Render(nextLabel)
	if page >= total {
		next = s.NavDisabled.Render(nextLabel)
	}
	line := prev + navSep + s.Counter.Render(pageCounter(page, total)) + navSep + next
	if dots != "" {
		line += navSep + dots
	}
	return line
}

// PageNavZones returns the click areas of the prev and next labels
func PageNavZones(g GridLayout, page, total int) (prev, next Rect) {
	row := g.NavRow()
	nextX := navLabelWidth + len(navSep) + runewidth.StringWidth(pageCounter(page, total)) + len(navSep)
	return Rect{X: 0, Y: row, W: navLabelWidth, H: 1}, Rect{X: nextX, Y: row, W: navLabelWidth, H: 1}
}

// RenderSearchLine shows the live input while searching or the active query otherwise
func RenderSearchLine(prompt, input, query string, searching bool, s *Styles) string {
	if searching {
		return s.Prompt.Render(prompt) + input
	}
	if query != "" {
		return s.Search.Render(fmt.Sprintf("[Search: %s]", query)) + s.Dim.Render("  esc to clear")
	}
	return s.Help.Render("/ to search")
}

// Footer describes the modal footer; Prev and Next say whether the arrows show
type Footer struct {
	Center string
	Badge  string
	Prev   bool
	Next   bool
}

// RenderModal renders the lightbox box at exactly the layout size
func RenderModal(m ModalLayout, title, body string, f Footer, s *Styles) string {
	iw := m.InnerWidth()

	// Header: title on the left, close button pinned to the right edge
	closeBtn := s.Close.Render("✕")
	t := runewidth.Truncate(title, max(iw-3, 1), "…")
	header := s.ModalTitle.Render(t) + strings.Repeat(" ", max(iw-runewidth.StringWidth(t)-1, 0)) + closeBtn

	bodyLines := strings.Split(body, "\n")
	bh := m.BodyHeight()
	if len(bodyLines) > bh {
		bodyLines = bodyLines[:bh]
	}
	for len(bodyLines) < bh {
		bodyLines = append(bodyLines, "")
	}

	lines := []string{header, ""}
	lines = append(lines, bodyLines...)
	lines = append(lines, "", renderFooter(iw, f, s))

	return s.Modal.
		Width(m.Box.W - 2).
		Height(m.Box.H - 2).
		MaxWidth(m.Box.W).
		Render(strings.Join(lines, "\n"))
}

func renderFooter(iw int, f Footer, s *Styles) string {
	left := strings.Repeat(" ", navLabelWidth)
	if f.Prev {
		left = s.Nav.Render(prevLabel)
	}
	right := strings.Repeat(" ", navLabelWidth)
	if f.Next {
		right = s.Nav.Render(nextLabel)
	}
	mid := iw - 2*navLabelWidth
	if mid < 1 {
		return left + right
	}
	badge := ""
	if f.Badge != "" {
		badge = "  " + s.Copied.Render(f.Badge)
	}
	text := runewidth.Truncate(f.Center, max(mid-lipgloss.Width(badge), 0), "…")
	center := lipgloss.PlaceHorizontal(mid, lipgloss.Center, s.Counter.Render(text)+badge)
	return left + center + right
}

// RenderStatus is the summary line under the search line
func RenderStatus(text string, isErr bool, s *Styles) string {
	if isErr {
		return s.StatusError.Render(text)
	}
	return s.Status.Render(text)
}
