package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// Overlay draws box at its rectangle on top of base. The base keeps its text
// but loses its colors so the box reads as the only live element.
func Overlay(base, box string, at Rect, width, height int, backdrop lipgloss.Style) string {
	baseLines := strings.Split(StripANSI(base), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	if len(baseLines) > height && height > 0 {
		baseLines = baseLines[:height]
	}

	boxLines := strings.Split(box, "\n")
	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		row := i - at.Y
		if row < 0 || row >= len(boxLines) {
			out[i] = backdrop.Render(runewidth.Truncate(line, width, ""))
			continue
		}

		boxLine := boxLines[row]
		boxW := lipgloss.Width(boxLine)

		left := runewidth.FillRight(runewidth.Truncate(line, at.X, ""), at.X)
		right := ""
		if runewidth.StringWidth(line) > at.X+boxW {
			right = runewidth.TruncateLeft(line, at.X+boxW, "")
		}
		out[i] = backdrop.Render(left) + boxLine + backdrop.Render(right)
	}
	return strings.Join(out, "\n")
}

