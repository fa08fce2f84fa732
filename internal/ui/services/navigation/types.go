package navigation

// State holds grid navigation state
type State struct {
	Cursor  int // focused tile within the current page
	Columns int
	Count   int // filtered view size
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Event types for navigation changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type PageChangedEvent struct {
	OldPage int
	NewPage int
	Total   int
}
