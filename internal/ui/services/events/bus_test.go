package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingEvent struct{ N int }
type pongEvent struct{}

func TestBusDeliversByType(t *testing.T) {
	bus := NewBus()

	var got []int
	bus.Subscribe(TypeOf(pingEvent{}), func(e interface{}) {
		got = append(got, e.(pingEvent).N)
	})
	bus.Subscribe(TypeOf(pongEvent{}), func(interface{}) {
		t.Fatal("pong handler called for ping")
	})

	bus.Publish(pingEvent{N: 1})
	bus.Publish(pingEvent{N: 2})

	assert.Equal(t, []int{1, 2}, got, "handlers run synchronously in publish order")
}

func TestNullBusIgnoresEverything(t *testing.T) {
	var bus EventBus = &NullBus{}
	assert.NotPanics(t, func() {
		bus.Subscribe("x", func(interface{}) {})
		bus.Publish(pingEvent{})
	})
}
