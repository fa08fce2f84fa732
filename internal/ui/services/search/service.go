package search

import (
	"strings"

	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/services/events"
)

// Service owns a collection, the query and the filtered view derived from them
type Service[T domain.Item] struct {
	state      *State
	bus        events.EventBus
	mode       logic.MatchMode
	collection []T
	view       []T
}

// NewService creates a new search service
func NewService[T domain.Item](bus events.EventBus, mode logic.MatchMode) *Service[T] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service[T]{
		state: &State{},
		bus:   bus,
		mode:  mode,
		view:  []T{},
	}
}

// SetCollection replaces the collection and recomputes the view
func (s *Service[T]) SetCollection(items []T) {
	s.collection = items
	s.recompute()
	s.bus.Publish(CollectionChangedEvent{Total: s.state.Total, Count: s.state.Count})
}

// SetQuery updates the query. It reports whether the raw query text changed,
// which is what callers use to reset pagination.
func (s *Service[T]) SetQuery(query string) bool {
	if query == s.state.Query {
		return false
	}

	s.state.Query = query
	if query == "" {
		s.recompute()
		s.bus.Publish(SearchClearedEvent{})
		return true
	}

	s.bus.Publish(SearchStartedEvent{Query: query})
	s.recompute()

	log.Debug().Str("query", query).Int("matches", s.state.Count).Msg("search completed")
	s.bus.Publish(SearchCompletedEvent{
		Query: query,
		Count: s.state.Count,
		Total: s.state.Total,
	})
	return true
}

// ClearSearch clears the current query and reports whether it was set
func (s *Service[T]) ClearSearch() bool {
	return s.SetQuery("")
}

func (s *Service[T]) recompute() {
	s.view = logic.Filter(s.collection, s.state.Query, s.mode)
	s.state.Total = len(s.collection)
	s.state.Count = len(s.view)
}

// Query returns the current search query
func (s *Service[T]) Query() string { return s.state.Query }

// IsFiltered reports whether a non-blank query narrows the view
func (s *Service[T]) IsFiltered() bool { return strings.TrimSpace(s.state.Query) != "" }

// View returns the filtered view
func (s *Service[T]) View() []T { return s.view }

// Collection returns the full collection
func (s *Service[T]) Collection() []T { return s.collection }

// Total returns the collection size
func (s *Service[T]) Total() int { return s.state.Total }

// Count returns the filtered view size
func (s *Service[T]) Count() int { return s.state.Count }
