package timing

import (
	"context"
	"sync"
	"time"
)

type contextKey struct{}

// EventPublisher receives timing events; nil disables publishing.
type EventPublisher interface {
	Publish(event Event)
}

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Info struct {
	Operation string
	StartTime time.Time
}

// Tracker records how long each named file operation takes.
type Tracker struct {
	timings  map[string][]time.Duration
	mu       sync.RWMutex
	eventBus EventPublisher
	enabled  bool
	now      func() time.Time
}

func NewTracker(eventBus EventPublisher) *Tracker {
	return &Tracker{
		timings:  make(map[string][]time.Duration),
		eventBus: eventBus,
		enabled:  true,
		now:      time.Now,
	}
}

func (t *Tracker) StartTiming(operation string) context.Context {
	if !t.isEnabled() {
		return context.Background()
	}

	start := t.now()
	ctx := context.WithValue(context.Background(), contextKey{}, Info{
		Operation: operation,
		StartTime: start,
	})

	t.publish("timing_started", map[string]interface{}{
		"operation": operation,
	})

	return ctx
}

func (t *Tracker) EndTiming(ctx context.Context) {
	if !t.isEnabled() {
		return
	}

	info, ok := ctx.Value(contextKey{}).(Info)
	if !ok {
		return
	}

	duration := t.now().Sub(info.StartTime)

	t.mu.Lock()
	t.timings[info.Operation] = append(t.timings[info.Operation], duration)
	t.mu.Unlock()

	t.publish("timing_completed", map[string]interface{}{
		"operation": info.Operation,
		"duration":  duration,
	})
}

func (t *Tracker) GetTimings(operation string) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	timings := t.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (t *Tracker) GetAverageTime(operation string) time.Duration {
	timings := t.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range timings {
		total += d
	}
	return total / time.Duration(len(timings))
}

func (t *Tracker) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

// Reset drops the samples of one operation, or of all operations when operation is empty.
func (t *Tracker) Reset(operation string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if operation == "" {
		t.timings = make(map[string][]time.Duration)
		return
	}
	delete(t.timings, operation)
}

func (t *Tracker) isEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

func (t *Tracker) publish(eventType string, data map[string]interface{}) {
	if t.eventBus == nil {
		return
	}
	t.eventBus.Publish(Event{
		Type:      eventType,
		Timestamp: t.now(),
		Data:      data,
	})
}
