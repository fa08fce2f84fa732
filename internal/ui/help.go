package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"llmsbrowse/internal/ui/input/types"
)

const helpKeyWidth = 14

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys    types.KeyMap
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	more    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{
		keys:    keys,
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		more:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

type helpSection struct {
	name string
	rows [][2]string
}

func row(b key.Binding) [2]string {
	return [2]string{b.Help().Key, b.Help().Desc}
}

func (r *HelpRenderer) sections(tabs bool) []helpSection {
	k := r.keys
	other := [][2]string{row(k.Help), row(k.Quit)}
	if tabs {
		other = append([][2]string{row(k.Tab)}, other...)
	}
	return []helpSection{
		{"Grid", [][2]string{
			{"↑↓←→/hjkl", "Move between tiles"},
			{"n/p, ]/[", "Next/previous page"},
			{"g/G", "First/last page"},
			{"enter", "Open the focused item"},
			{"c", "Copy prompt text"},
			{"o", "Open prompt text in pager"},
			row(k.Reload),
		}},
		{"Search", [][2]string{
			{"/", "Search the collection"},
			{"enter", "Keep the query"},
			{"esc", "Clear the query"},
		}},
		{"Viewer", [][2]string{
			{"esc", "Close"},
			{"←/→", "Previous/next item"},
			{"↑/↓, PgUp/PgDn", "Scroll the text"},
			{"c", "Copy prompt text"},
			{"o", "Open prompt text in pager"},
			{"click outside", "Close"},
		}},
		{"Other", other},
	}
}

// Content renders the full help text
func (r *HelpRenderer) Content(tabs bool) string {
	var help strings.Builder

	help.WriteString(r.title.Render("llmsbrowse Help"))
	help.WriteString("\n")
	for _, sec := range r.sections(tabs) {
		help.WriteString("\n")
		help.WriteString(r.section.Render(sec.name))
		help.WriteString("\n")
		for _, kv := range sec.rows {
			help.WriteString("  ")
			help.WriteString(r.key.Render(runewidth.FillRight(kv[0], helpKeyWidth)))
			help.WriteString("  ")
			help.WriteString(r.desc.Render(kv[1]))
			help.WriteString("\n")
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// LineCount is the number of lines of the full help text
func (r *HelpRenderer) LineCount(tabs bool) int {
	return strings.Count(r.Content(tabs), "\n") + 1
}

// VisibleLines is how many help lines fit a popup on a screen of height
func VisibleLines(height int) int {
	// popup border and padding
	return max(height-6, 5)
}

// Render renders the window of help lines starting at scrollOffset
func (r *HelpRenderer) Render(tabs bool, height, scrollOffset int) string {
	content := r.Content(tabs)
	lines := strings.Split(content, "\n")
	totalLines := len(lines)
	visibleHeight := VisibleLines(height)

	if totalLines <= visibleHeight {
		return content
	}

	// Ensure scroll offset is valid
	scrollOffset = min(max(scrollOffset, 0), totalLines-visibleHeight)
	endLine := scrollOffset + visibleHeight
	visibleLines := append([]string(nil), lines[scrollOffset:endLine]...)

	// Add scroll indicators
	if scrollOffset > 0 {
		visibleLines[0] = r.more.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = r.more.Render("↓ (more below)")
	}
	return strings.Join(visibleLines, "\n")
}
