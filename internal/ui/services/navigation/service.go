package navigation

import (
	"github.com/charmbracelet/bubbles/paginator"

	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/services/events"
)

// Service handles pagination of the filtered view and the focused tile.
// Page numbers in its API are 1-based; the wrapped paginator is 0-based.
type Service struct {
	state *State
	bus   events.EventBus
	pager paginator.Model
}

// NewService creates a new navigation service
func NewService(bus events.EventBus, perPage, columns int) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if perPage < 1 {
		perPage = 1
	}
	if columns < 1 {
		columns = 1
	}

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = perPage
	p.TotalPages = 1

	return &Service{
		state: &State{Columns: columns},
		bus:   bus,
		pager: p,
	}
}

// SetCount updates the view size and clamps the page and cursor into range.
// It never resets the page.
func (s *Service) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Count = n
	// paginator.SetTotalPages ignores n < 1, so compute it here
	s.pager.TotalPages = logic.TotalPages(n, s.pager.PerPage)
	s.setPage(logic.ClampPage(s.Page(), n, s.pager.PerPage))
	s.clampCursor()
}

// ResetPage returns to page 1 with the first tile focused
func (s *Service) ResetPage() {
	s.setPage(1)
	s.state.Cursor = 0
}

// Page returns the current 1-based page number
func (s *Service) Page() int { return s.pager.Page + 1 }

// TotalPages returns the page count, at least 1
func (s *Service) TotalPages() int { return s.pager.TotalPages }

// PerPage returns the page size
func (s *Service) PerPage() int { return s.pager.PerPage }

// Columns returns the grid width in tiles
func (s *Service) Columns() int { return s.state.Columns }

// SetColumns changes the grid width, for example after a resize
func (s *Service) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	s.state.Columns = columns
}

// Cursor returns the focused tile within the page
func (s *Service) Cursor() int { return s.state.Cursor }

// SetPage jumps to a 1-based page, clamped
func (s *Service) SetPage(page int) {
	s.setPage(logic.ClampPage(page, s.state.Count, s.pager.PerPage))
	s.clampCursor()
}

// NextPage moves forward one page; a no-op on the last page
func (s *Service) NextPage() bool {
	if s.pager.OnLastPage() {
		return false
	}
	s.SetPage(s.Page() + 1)
	return true
}

// PrevPage moves back one page; a no-op on the first page
func (s *Service) PrevPage() bool {
	if s.pager.OnFirstPage() {
		return false
	}
	s.SetPage(s.Page() - 1)
	return true
}

// OnFirstPage reports whether prev is disabled
func (s *Service) OnFirstPage() bool { return s.pager.OnFirstPage() }

// OnLastPage reports whether next is disabled
func (s *Service) OnLastPage() bool { return s.pager.OnLastPage() }

// Bounds returns the 0-based half-open slice bounds of the current page
func (s *Service) Bounds() (start, end int) {
	return s.pager.GetSliceBounds(s.state.Count)
}

// FocusIndex returns the view index of the focused tile, or -1 when empty
func (s *Service) FocusIndex() int {
	start, end := s.Bounds()
	if end <= start {
		return -1
	}
	return start + s.state.Cursor
}

// FocusTile focuses tile i of the current page
func (s *Service) FocusTile(i int) {
	old := s.FocusIndex()
	s.state.Cursor = i
	s.clampCursor()
	s.publishCursor(old)
}

// Navigate moves the focused tile. Left/right step across page boundaries,
// up/down move by a grid row within the page.
func (s *Service) Navigate(direction Direction) {
	old := s.FocusIndex()
	if old < 0 {
		return
	}
	start, end := s.Bounds()
	onPage := end - start
	cols := s.state.Columns

	switch direction {
	case DirectionLeft:
		if s.state.Cursor > 0 {
			s.state.Cursor--
		} else if s.PrevPage() {
			s.state.Cursor = s.pageLen() - 1
		}
	case DirectionRight:
		if s.state.Cursor < onPage-1 {
			s.state.Cursor++
		} else if s.NextPage() {
			s.state.Cursor = 0
		}
	case DirectionUp:
		if s.state.Cursor-cols >= 0 {
			s.state.Cursor -= cols
		}
	case DirectionDown:
		if s.state.Cursor+cols < onPage {
			s.state.Cursor += cols
		} else if rowOf(s.state.Cursor, cols) < rowOf(onPage-1, cols) {
			// partial last row
			s.state.Cursor = onPage - 1
		}
	case DirectionPageUp:
		s.PrevPage()
	case DirectionPageDown:
		s.NextPage()
	case DirectionHome:
		s.SetPage(1)
	case DirectionEnd:
		s.SetPage(s.TotalPages())
	}

	s.clampCursor()
	s.publishCursor(old)
}

// View renders the paginator dots
func (s *Service) View() string {
	if s.pager.TotalPages <= 1 {
		return ""
	}
	return s.pager.View()
}

func (s *Service) setPage(page int) {
	old := s.Page()
	s.pager.Page = page - 1
	if old != page {
		s.bus.Publish(PageChangedEvent{OldPage: old, NewPage: page, Total: s.pager.TotalPages})
	}
}

func (s *Service) pageLen() int {
	start, end := s.Bounds()
	return end - start
}

func (s *Service) clampCursor() {
	n := s.pageLen()
	if s.state.Cursor >= n {
		s.state.Cursor = n - 1
	}
	if s.state.Cursor < 0 {
		s.state.Cursor = 0
	}
}

func (s *Service) publishCursor(old int) {
	if now := s.FocusIndex(); now != old {
		s.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: now})
	}
}

func rowOf(i, cols int) int { return i / cols }
