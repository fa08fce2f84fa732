package coordinator

import (
	"time"

	clip "llmsbrowse/internal/clipboard"
	"llmsbrowse/internal/domain"
	"llmsbrowse/internal/eventbus"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/services/clipboard"
	"llmsbrowse/internal/ui/services/events"
	"llmsbrowse/internal/ui/services/lightbox"
	"llmsbrowse/internal/ui/services/navigation"
	"llmsbrowse/internal/ui/services/search"
)

// Options configures the services of one collection
type Options struct {
	Owner   string
	PerPage int
	Columns int
	Match   logic.MatchMode
	Policy  logic.NavPolicy
	Lock    *logic.ScrollLock
	Writer  clip.Writer
	AckTTL  time.Duration
	Domain  eventbus.EventBus // receives ItemCopied; may be nil
}

// Coordinator manages the UI services of one collection and their interactions
type Coordinator[T domain.Item] struct {
	// Services
	Search     *search.Service[T]
	Navigation *navigation.Service
	Lightbox   *lightbox.Service[T]
	Clipboard  *clipboard.Service

	// Dependencies
	bus events.EventBus
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator[T domain.Item](bus events.EventBus, opts Options) *Coordinator[T] {
	if bus == nil {
		bus = events.NewBus()
	}
	c := &Coordinator[T]{
		Search:     search.NewService[T](bus, opts.Match),
		Navigation: navigation.NewService(bus, opts.PerPage, opts.Columns),
		Lightbox:   lightbox.NewService[T](opts.Owner, opts.Policy, opts.Lock, bus),
		Clipboard:  clipboard.NewService(opts.Owner, opts.Writer, opts.AckTTL, opts.Domain),
		bus:        bus,
	}

	// Subscribe to events
	c.subscribeToEvents()

	return c
}

// subscribeToEvents keeps pagination and the modal consistent with the view
func (c *Coordinator[T]) subscribeToEvents() {
	// A new query starts over on page one
	onQuery := func(e interface{}) {
		c.Navigation.SetCount(c.Search.Count())
		c.Navigation.ResetPage()
		c.Lightbox.Resolve(c.Search.View())
	}
	c.bus.Subscribe(events.TypeOf(search.SearchCompletedEvent{}), onQuery)
	c.bus.Subscribe(events.TypeOf(search.SearchClearedEvent{}), onQuery)

	// A reload keeps the page where possible
	c.bus.Subscribe(events.TypeOf(search.CollectionChangedEvent{}), func(e interface{}) {
		c.Navigation.SetCount(c.Search.Count())
		c.Lightbox.Resolve(c.Search.View())
	})
}

// Bus returns the UI event bus the services publish on
func (c *Coordinator[T]) Bus() events.EventBus {
	return c.bus
}

// SetCollection replaces the collection
func (c *Coordinator[T]) SetCollection(items []T) {
	c.Search.SetCollection(items)
}

// SetQuery updates the live query
func (c *Coordinator[T]) SetQuery(query string) bool {
	return c.Search.SetQuery(query)
}

// View returns the filtered view
func (c *Coordinator[T]) View() []T {
	return c.Search.View()
}

// PageItems returns the items of the current page
func (c *Coordinator[T]) PageItems() []T {
	start, end := c.Navigation.Bounds()
	return c.Search.View()[start:end]
}

// FocusedItem returns the item under the grid cursor
func (c *Coordinator[T]) FocusedItem() (T, bool) {
	var zero T
	i := c.Navigation.FocusIndex()
	view := c.Search.View()
	if i < 0 || i >= len(view) {
		return zero, false
	}
	return view[i], true
}

// OpenFocused opens the modal on the focused item
func (c *Coordinator[T]) OpenFocused() bool {
	item, ok := c.FocusedItem()
	if !ok {
		return false
	}
	return c.Lightbox.Open(c.Search.View(), item.ItemID())
}

// ModalItem returns the item shown in the modal
func (c *Coordinator[T]) ModalItem() (T, bool) {
	return c.Lightbox.Current(c.Search.View())
}

// Next steps the modal forward
func (c *Coordinator[T]) Next() bool {
	return c.Lightbox.Next(c.Search.View())
}

// Prev steps the modal back
func (c *Coordinator[T]) Prev() bool {
	return c.Lightbox.Prev(c.Search.View())
}

// ActiveItem is the modal item when the modal is open, else the focused tile
func (c *Coordinator[T]) ActiveItem() (T, bool) {
	if c.Lightbox.IsOpen() {
		return c.ModalItem()
	}
	return c.FocusedItem()
}
