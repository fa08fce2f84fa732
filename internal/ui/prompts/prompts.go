// Package prompts is the system prompts library: a text collection where the
// modal navigation stops at the ends and the prompt text can be copied.
package prompts

import (
	"context"

	"llmsbrowse/internal/config"
	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/source"
	"llmsbrowse/internal/ui/browser"
	"llmsbrowse/internal/ui/logic"
)

const Name = "prompts"

// NewVariant describes the prompts library loaded from location
func NewVariant(location string, cfg *config.Config) browser.Variant[domain.Prompt] {
	policy := logic.NavBounded
	markdown, style := true, "dark"
	if cfg != nil {
		if cfg.Prompts.Wrap {
			policy = logic.NavWrap
		}
		markdown, style = cfg.UI.RenderMarkdown, cfg.UI.GlamourStyle
	}

	return browser.Variant[domain.Prompt]{
		Name:        Name,
		Noun:        "prompts",
		Policy:      policy,
		TextPayload: true,
		Source:      location,
		Load: func(ctx context.Context) ([]domain.Prompt, error) {
			return source.LoadPrompts(ctx, location)
		},
		Render: NewRenderer(markdown, style),
	}
}

// New creates the prompts pane
func New(location string, cfg *config.Config, opts browser.Options) *browser.Component[domain.Prompt] {
	return browser.New(NewVariant(location, cfg), opts)
}
