package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	id     string
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Handle(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) GetID() string { return r.id }

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestShutdownDeliversBufferedEvents(t *testing.T) {
	bus := NewBus(16)
	rec := &recorder{id: "rec"}
	bus.Subscribe("saved", rec)

	for i := 0; i < 5; i++ {
		bus.Publish(Event{Type: "saved"})
	}
	bus.Publish(Event{Type: "other"})
	bus.Shutdown()

	assert.Equal(t, 5, rec.count())
	for _, e := range rec.events {
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(16)
	rec := &recorder{id: "rec"}
	bus.Subscribe("saved", rec)
	bus.Unsubscribe("saved", &recorder{id: "rec"})

	bus.Publish(Event{Type: "saved"})
	bus.Shutdown()

	assert.Zero(t, rec.count())
}

type panicky struct{}

func (panicky) Handle(Event)  { panic("boom") }
func (panicky) GetID() string { return "panicky" }

func TestPanickingHandlerDoesNotStopWorker(t *testing.T) {
	bus := NewBus(16)
	rec := &recorder{id: "rec"}
	bus.Subscribe("saved", panicky{})
	bus.Subscribe("saved", rec)

	bus.Publish(Event{Type: "saved"})
	bus.Publish(Event{Type: "saved"})
	bus.Shutdown()

	assert.Equal(t, 2, rec.count())
}

func TestPublishAfterShutdownIsDropped(t *testing.T) {
	bus := NewBus(4)
	bus.Shutdown()
	bus.Shutdown()

	assert.NotPanics(t, func() { bus.Publish(Event{Type: "saved"}) })
}
