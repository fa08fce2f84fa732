// Package gallery is the screenshots gallery: an image collection where the
// modal navigation wraps around.
package gallery

import (
	"context"

	"llmsbrowse/internal/config"
	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/source"
	"llmsbrowse/internal/ui/browser"
	"llmsbrowse/internal/ui/logic"
)

const Name = "gallery"

// NewVariant describes the screenshots gallery loaded from location
func NewVariant(location string, cfg *config.Config) browser.Variant[domain.Screenshot] {
	policy := logic.NavWrap
	if cfg != nil && !cfg.Gallery.Wrap {
		policy = logic.NavBounded
	}

	return browser.Variant[domain.Screenshot]{
		Name:   Name,
		Noun:   "screenshots",
		Policy: policy,
		Source: location,
		Load: func(ctx context.Context) ([]domain.Screenshot, error) {
			return source.LoadScreenshots(ctx, location)
		},
		Render: NewRenderer(),
	}
}

// New creates the gallery pane
func New(location string, cfg *config.Config, opts browser.Options) *browser.Component[domain.Screenshot] {
	return browser.New(NewVariant(location, cfg), opts)
}
