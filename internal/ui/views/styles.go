package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Tile          lipgloss.Style
	TileFocused   lipgloss.Style
	TileTitle     lipgloss.Style
	TileSubtitle  lipgloss.Style
	Modal         lipgloss.Style
	ModalTitle    lipgloss.Style
	Close         lipgloss.Style
	Nav           lipgloss.Style
	NavDisabled   lipgloss.Style
	Counter       lipgloss.Style
	Copied        lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	InfoBox       lipgloss.Style
	Backdrop      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Underline(true).Padding(0, 1),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Search:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Help:      lipgloss.NewStyle().Faint(true),
		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		TileFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		TileTitle:    lipgloss.NewStyle().Bold(true),
		TileSubtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		ModalTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Close:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Nav:           lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		NavDisabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Counter:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Copied:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
