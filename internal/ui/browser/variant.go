package browser

import (
	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/commands"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/views"
)

// ModalState is what a renderer needs to draw the modal footer
type ModalState struct {
	Index   int // 0-based position in the filtered view
	Total   int // filtered view size
	HasPrev bool
	HasNext bool
}

// Renderer draws the items of one collection
type Renderer[T domain.Item] interface {
	Tile(item T) views.TileContent
	ModalTitle(item T) string
	ModalBody(item T, width int) string
	ModalFooter(item T, st ModalState) views.Footer
}

// Variant describes one instantiation of the browser
type Variant[T domain.Item] struct {
	Name        string // owner key and tab title
	Noun        string // plural noun used in status lines
	Policy      logic.NavPolicy
	TextPayload bool // items carry text that can be copied and paged
	Source      string
	Load        commands.LoadFunc[T]
	Render      Renderer[T]
}
