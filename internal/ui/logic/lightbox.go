package logic

import "llmsbrowse/internal/domain"

// NavPolicy decides what next/prev do at the ends of the view
type NavPolicy int

const (
	// NavBounded makes next/prev no-ops at the last/first item
	NavBounded NavPolicy = iota
	// NavWrap cycles from the last item to the first and back
	NavWrap
)

// PolicyFor returns NavWrap when wrap is set, otherwise NavBounded
func PolicyFor(wrap bool) NavPolicy {
	if wrap {
		return NavWrap
	}
	return NavBounded
}

// Lightbox is the modal selection state machine. The selection is kept as an
// id plus its index in the view the caller passes in; callers must call
// Resolve whenever that view changes.
type Lightbox[T domain.Item] struct {
	policy NavPolicy
	open   bool
	id     string
	index  int
}

// NewLightbox creates a closed lightbox
func NewLightbox[T domain.Item](policy NavPolicy) *Lightbox[T] {
	return &Lightbox[T]{policy: policy, index: -1}
}

func (l *Lightbox[T]) Policy() NavPolicy { return l.policy }
func (l *Lightbox[T]) IsOpen() bool      { return l.open }

// ID returns the selected id, empty when closed
func (l *Lightbox[T]) ID() string {
	if !l.open {
		return ""
	}
	return l.id
}

// Index returns the selected position in the view, -1 when closed
func (l *Lightbox[T]) Index() int {
	if !l.open {
		return -1
	}
	return l.index
}

// Open selects the item with id. It returns false and stays closed when the
// id is not in view.
func (l *Lightbox[T]) Open(view []T, id string) bool {
	i := domain.IndexOf(view, id)
	if i < 0 {
		return false
	}
	l.open = true
	l.id = id
	l.index = i
	return true
}

// Close clears the selection. It reports whether the lightbox was open.
func (l *Lightbox[T]) Close() bool {
	wasOpen := l.open
	l.open = false
	l.id = ""
	l.index = -1
	return wasOpen
}

// Next advances the selection per policy and reports whether it moved
func (l *Lightbox[T]) Next(view []T) bool {
	n := len(view)
	if !l.open || n == 0 {
		return false
	}
	target := l.index + 1
	if target >= n {
		if l.policy != NavWrap {
			return false
		}
		target = 0
	}
	return l.moveTo(view, target)
}

// Prev moves the selection back per policy and reports whether it moved
func (l *Lightbox[T]) Prev(view []T) bool {
	n := len(view)
	if !l.open || n == 0 {
		return false
	}
	target := l.index - 1
	if target < 0 {
		if l.policy != NavWrap {
			return false
		}
		target = n - 1
	}
	return l.moveTo(view, target)
}

func (l *Lightbox[T]) moveTo(view []T, target int) bool {
	if target == l.index {
		return false
	}
	l.index = target
	l.id = view[target].ItemID()
	return true
}

// Resolve re-locates the selection by id after the view changed. When the id
// is gone the lightbox closes and Resolve returns true.
func (l *Lightbox[T]) Resolve(view []T) (closed bool) {
	if !l.open {
		return false
	}
	i := domain.IndexOf(view, l.id)
	if i < 0 {
		l.Close()
		return true
	}
	l.index = i
	return false
}

// Current returns the selected item
func (l *Lightbox[T]) Current(view []T) (T, bool) {
	var zero T
	if !l.open || l.index < 0 || l.index >= len(view) {
		return zero, false
	}
	return view[l.index], true
}

// HasNext reports whether a next control should be offered
func (l *Lightbox[T]) HasNext(n int) bool {
	if !l.open || n <= 1 {
		return false
	}
	if l.policy == NavWrap {
		return true
	}
	return l.index < n-1
}

// HasPrev reports whether a previous control should be offered
func (l *Lightbox[T]) HasPrev(n int) bool {
	if !l.open || n <= 1 {
		return false
	}
	if l.policy == NavWrap {
		return true
	}
	return l.index > 0
}
