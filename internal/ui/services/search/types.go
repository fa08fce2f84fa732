package search

// State holds search state
type State struct {
	Query string
	Total int // collection size
	Count int // filtered view size
}

// Event types
type SearchStartedEvent struct {
	Query string
}

type SearchCompletedEvent struct {
	Query string
	Count int
	Total int
}

type SearchClearedEvent struct{}

// CollectionChangedEvent is published when the underlying collection is replaced
type CollectionChangedEvent struct {
	Total int
	Count int
}
