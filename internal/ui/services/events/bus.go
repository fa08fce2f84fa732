package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Bus is a synchronous event bus for UI services. Handlers run on the
// publishing goroutine, which is the Bubble Tea update loop, so they may
// touch model state.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type. Use TypeOf to build the key.
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := TypeOf(event)
	log.Trace().Str("event", eventType).Msg("ui event")

	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[eventType]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the bus key for an event value
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
