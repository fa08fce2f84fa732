package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSourceChanged, func(e DomainEvent) { got <- e })

	b.Publish(SourceChangedEvent{Path: "prompts.json"})

	select {
	case e := <-got:
		ev, ok := e.(SourceChangedEvent)
		require.True(t, ok)
		assert.Equal(t, "prompts.json", ev.Path)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscribeOnlyReceivesItsType(t *testing.T) {
	b := New()
	defer b.Close()

	var copied atomic.Int32
	done := make(chan struct{}, 1)
	b.Subscribe(EventItemCopied, func(DomainEvent) { copied.Add(1) })
	b.Subscribe(EventSourceChanged, func(DomainEvent) { done <- struct{}{} })

	b.Publish(SourceChangedEvent{Path: "x"})
	<-done

	assert.Equal(t, int32(0), copied.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventItemCopied, func(DomainEvent) { calls.Add(1) })
	unsubscribe()

	b.Publish(ItemCopiedEvent{Owner: "prompts", ItemID: "a"})
	b.Close()

	assert.Equal(t, int32(0), calls.Load())
}

func TestUnsubscribeKeepsOtherHandlers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan string, 2)
	first := b.Subscribe(EventItemCopied, func(DomainEvent) { got <- "first" })
	b.Subscribe(EventItemCopied, func(DomainEvent) { got <- "second" })
	first()

	b.Publish(ItemCopiedEvent{ItemID: "a"})

	select {
	case name := <-got:
		assert.Equal(t, "second", name)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { done <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler not called after panic")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()

	assert.NotPanics(t, func() {
		b.Publish(SourceChangedEvent{Path: "late"})
	})
}
