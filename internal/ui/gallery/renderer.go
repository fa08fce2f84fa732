package gallery

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/browser"
	"llmsbrowse/internal/ui/views"
)

// Renderer draws screenshots. The terminal cannot show the image itself, so
// the modal shows a frame with the image location.
type Renderer struct {
	frame lipgloss.Style
	dim   lipgloss.Style
}

func NewRenderer() *Renderer {
	return &Renderer{
		frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		dim: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Tile shows the title over the image file name
func (r *Renderer) Tile(s domain.Screenshot) views.TileContent {
	return views.TileContent{Title: s.Name, Subtitle: fileName(s.URL)}
}

func (r *Renderer) ModalTitle(s domain.Screenshot) string {
	return Capitalize(s.Name)
}

// ModalBody renders the image frame centred in width
func (r *Renderer) ModalBody(s domain.Screenshot, width int) string {
	inner := max(width-8, 8)
	loc := wrap.String(s.URL, inner)
	content := lipgloss.JoinVertical(lipgloss.Center,
		"▣  "+fileName(s.URL),
		"",
		r.dim.Render(loc),
	)
	box := r.frame.Width(min(inner+4, width-2)).Align(lipgloss.Center).Render(content)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// ModalFooter shows "i / n" and both arrows only when there is more than
// one image
func (r *Renderer) ModalFooter(_ domain.Screenshot, st browser.ModalState) views.Footer {
	if st.Total <= 1 {
		return views.Footer{}
	}
	return views.Footer{
		Center: fmt.Sprintf("%d / %d", st.Index+1, st.Total),
		Prev:   st.HasPrev,
		Next:   st.HasNext,
	}
}

// Capitalize upper-cases the first letter of a title
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func fileName(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(strings.TrimRight(p, "/"))
	if name == "." || name == "/" {
		return location
	}
	return name
}
