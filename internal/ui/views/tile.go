package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TileContent is what a collection shows for one item in the grid
type TileContent struct {
	Title    string
	Subtitle string
	Badge    string
}

// RenderTile renders one grid tile exactly w cells wide and TileHeight rows tall
func RenderTile(c TileContent, w int, focused bool, query string, s *Styles) string {
	inner := w - 4 // border and padding
	if inner < 1 {
		inner = 1
	}

	title := runewidth.Truncate(c.Title, inner, "…")
	title = highlightMatch(title, query, s.Highlight, s.TileTitle)

	badge := ""
	subW := inner
	if c.Badge != "" {
		badge = s.Copied.Render(c.Badge)
		subW -= lipgloss.Width(badge) + 1
	}
	sub := runewidth.FillRight(runewidth.Truncate(c.Subtitle, max(subW, 0), "…"), max(subW, 0))
	second := s.TileSubtitle.Render(sub)
	if badge != "" {
		second += " " + badge
	}

	style := s.Tile
	if focused {
		style = s.TileFocused
	}
	return style.Width(w - 2).Render(title + "\n" + second)
}

// RenderGrid lays the page's tiles out in rows and pads to the full grid height
func RenderGrid(tiles []string, g GridLayout) string {
	var rows []string
	gap := strings.Repeat(" ", TileGap)
	for start := 0; start < len(tiles); start += g.Columns {
		end := min(start+g.Columns, len(tiles))
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, tiles[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := strings.Join(rows, "\n")
	lines := strings.Count(grid, "\n") + 1
	if pad := g.Rows*TileHeight - lines; pad > 0 {
		grid += strings.Repeat("\n", pad)
	}
	return grid
}

// highlightMatch highlights matching text within a string
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lowercasing can change byte lengths; fall back to plain rendering then
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	// Render with appropriate styles
	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
