package viewmodels

import (
	"strings"

	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/coordinator"
)

// ViewState is the view-ready snapshot of one collection
type ViewState[T domain.Item] struct {
	// Grid
	Items      []T // items of the current page
	Focus      int // cursor within Items, -1 when the page is empty
	Page       int // 1-based
	TotalPages int
	Start      int // 0-based index of Items[0] in the filtered view
	End        int
	Count      int // filtered view size
	Total      int // collection size
	Query      string

	// Modal
	ModalOpen  bool
	ModalItem  T
	ModalIndex int
	HasPrev    bool
	HasNext    bool

	// CopiedID is the item showing the copied acknowledgment, if any
	CopiedID string
}

// BuildViewState creates a ViewState from the services of a collection
func BuildViewState[T domain.Item](c *coordinator.Coordinator[T]) ViewState[T] {
	nav := c.Navigation
	start, end := nav.Bounds()
	vs := ViewState[T]{
		Items:      c.PageItems(),
		Focus:      -1,
		Page:       nav.Page(),
		TotalPages: nav.TotalPages(),
		Start:      start,
		End:        end,
		Count:      c.Search.Count(),
		Total:      c.Search.Total(),
		Query:      c.Search.Query(),
	}
	if len(vs.Items) > 0 {
		vs.Focus = nav.Cursor()
	}

	if item, ok := c.ModalItem(); ok {
		lb := c.Lightbox
		vs.ModalOpen = true
		vs.ModalItem = item
		vs.ModalIndex = lb.Index()
		vs.HasPrev = lb.HasPrev(vs.Count)
		vs.HasNext = lb.HasNext(vs.Count)
	}

	if ack, ok := c.Clipboard.Active(); ok {
		vs.CopiedID = ack.ItemID
	}
	return vs
}

// IsFiltered reports whether a query narrows the collection
func (v ViewState[T]) IsFiltered() bool {
	return strings.TrimSpace(v.Query) != ""
}

// IsCopied reports whether id shows the copied state
func (v ViewState[T]) IsCopied(id string) bool {
	return v.CopiedID != "" && v.CopiedID == id
}
