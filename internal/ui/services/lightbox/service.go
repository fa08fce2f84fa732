package lightbox

import (
	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/services/events"
)

// Service wraps the lightbox state machine and ties the shared scroll lock to
// the open state: the lock is held exactly while the modal is open.
type Service[T domain.Item] struct {
	owner   string
	box     *logic.Lightbox[T]
	lock    *logic.ScrollLock
	release func()
	bus     events.EventBus
}

// NewService creates a closed lightbox for owner
func NewService[T domain.Item](owner string, policy logic.NavPolicy, lock *logic.ScrollLock, bus events.EventBus) *Service[T] {
	if lock == nil {
		lock = logic.NewScrollLock()
	}
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service[T]{
		owner: owner,
		box:   logic.NewLightbox[T](policy),
		lock:  lock,
		bus:   bus,
	}
}

// Open selects id in view. Opening while already open moves the selection.
func (s *Service[T]) Open(view []T, id string) bool {
	if !s.box.Open(view, id) {
		log.Debug().Str("owner", s.owner).Str("id", id).Msg("open ignored, id not in view")
		return false
	}
	if s.release == nil {
		s.release = s.lock.Acquire()
	}
	s.bus.Publish(ModalOpenedEvent{Owner: s.owner, ID: id, Index: s.box.Index()})
	return true
}

// Close closes the modal and releases the scroll lock. Safe to call when closed.
func (s *Service[T]) Close(reason CloseReason) bool {
	id := s.box.ID()
	wasOpen := s.box.Close()
	s.releaseLock()
	if wasOpen {
		s.bus.Publish(ModalClosedEvent{Owner: s.owner, ID: id, Reason: reason})
	}
	return wasOpen
}

// Next moves to the next item per policy
func (s *Service[T]) Next(view []T) bool {
	old := s.box.Index()
	if !s.box.Next(view) {
		return false
	}
	s.bus.Publish(ModalNavigatedEvent{Owner: s.owner, OldIndex: old, NewIndex: s.box.Index()})
	return true
}

// Prev moves to the previous item per policy
func (s *Service[T]) Prev(view []T) bool {
	old := s.box.Index()
	if !s.box.Prev(view) {
		return false
	}
	s.bus.Publish(ModalNavigatedEvent{Owner: s.owner, OldIndex: old, NewIndex: s.box.Index()})
	return true
}

// Resolve re-locates the selection after the view changed and closes the
// modal when the selected id is gone.
func (s *Service[T]) Resolve(view []T) (closed bool) {
	id := s.box.ID()
	if !s.box.Resolve(view) {
		return false
	}
	s.releaseLock()
	s.bus.Publish(ModalClosedEvent{Owner: s.owner, ID: id, Reason: ReasonStale})
	return true
}

func (s *Service[T]) releaseLock() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

func (s *Service[T]) IsOpen() bool               { return s.box.IsOpen() }
func (s *Service[T]) ID() string                 { return s.box.ID() }
func (s *Service[T]) Index() int                 { return s.box.Index() }
func (s *Service[T]) Policy() logic.NavPolicy    { return s.box.Policy() }
func (s *Service[T]) Current(view []T) (T, bool) { return s.box.Current(view) }
func (s *Service[T]) HasNext(n int) bool         { return s.box.HasNext(n) }
func (s *Service[T]) HasPrev(n int) bool         { return s.box.HasPrev(n) }
func (s *Service[T]) HoldsLock() bool            { return s.release != nil }
func (s *Service[T]) Lock() *logic.ScrollLock    { return s.lock }
