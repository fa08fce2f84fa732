package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/browser"
	"llmsbrowse/internal/ui/views"
)

// Renderer draws prompts. Bodies are rendered as markdown when enabled and
// cached per prompt id until the text or the width changes.
type Renderer struct {
	markdown bool
	style    string
	cache    map[string]cachedBody
}

type cachedBody struct {
	value string
	width int
	body  string
}

// NewRenderer creates a prompt renderer. style is a glamour style name;
// "auto" picks one from the terminal background.
func NewRenderer(markdown bool, style string) *Renderer {
	return &Renderer{
		markdown: markdown,
		style:    style,
		cache:    make(map[string]cachedBody),
	}
}

// Tile shows the name over the first line of the prompt text
func (r *Renderer) Tile(p domain.Prompt) views.TileContent {
	sub := firstLine(p.Value)
	if sub == "" {
		sub = p.ID
	}
	return views.TileContent{Title: p.Name, Subtitle: sub}
}

func (r *Renderer) ModalTitle(p domain.Prompt) string {
	return p.Name
}

// ModalBody renders the full prompt text to fit width
func (r *Renderer) ModalBody(p domain.Prompt, width int) string {
	width = max(width, 1)
	if c, ok := r.cache[p.ID]; ok && c.width == width && c.value == p.Value {
		return c.body
	}

	body := ""
	if r.markdown {
		var err error
		body, err = r.renderMarkdown(p.Value, width)
		if err != nil {
			log.Debug().Err(err).Str("id", p.ID).Msg("markdown render failed, using plain text")
			body = ""
		}
	}
	if body == "" {
		body = wrap.String(wordwrap.String(p.Value, width), width)
	}

	body = clampWidth(strings.Trim(body, "\n"), width)
	r.cache[p.ID] = cachedBody{value: p.Value, width: width, body: body}
	return body
}

func (r *Renderer) renderMarkdown(text string, width int) (string, error) {
	var styleOpt glamour.TermRendererOption
	switch r.style {
	case "":
		styleOpt = glamour.WithStandardStyle("dark")
	case "auto":
		styleOpt = glamour.WithAutoStyle()
	default:
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return tr.Render(text)
}

// ModalFooter shows "i / n · id"; arrows hide at the ends
func (r *Renderer) ModalFooter(p domain.Prompt, st browser.ModalState) views.Footer {
	return views.Footer{
		Center: fmt.Sprintf("%d / %d · %s", st.Index+1, st.Total, p.ID),
		Prev:   st.HasPrev,
		Next:   st.HasNext,
	}
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "# ")
		if line != "" {
			return line
		}
	}
	return ""
}

// clampWidth cuts every line to width, keeping ANSI sequences intact
func clampWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}
