package debug

import (
	"context"
	"io"
	"os"
	"time"

	"textpad/internal/debug/eventbus"
	"textpad/internal/debug/filetracker"
	"textpad/internal/debug/logger"
	"textpad/internal/debug/timing"
)

// EventBusImpl wraps eventbus.Bus to implement EventPublisher
type EventBusImpl struct {
	*eventbus.Bus
}

func (e *EventBusImpl) Publish(event Event) {
	e.Bus.Publish(eventbus.Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
		Context:   event.Context,
	})
}

func (e *EventBusImpl) Subscribe(eventType string, handler EventHandler) {
	e.Bus.Subscribe(eventType, &eventHandlerAdapter{handler: handler})
}

func (e *EventBusImpl) Unsubscribe(eventType string, handler EventHandler) {
	e.Bus.Unsubscribe(eventType, &eventHandlerAdapter{handler: handler})
}

type eventHandlerAdapter struct {
	handler EventHandler
}

func (e *eventHandlerAdapter) Handle(event eventbus.Event) {
	e.handler.Handle(Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
		Context:   event.Context,
	})
}

func (e *eventHandlerAdapter) GetID() string {
	return e.handler.GetID()
}

// trackerEvents forwards tracker events onto the shared bus
type trackerEvents struct {
	eventBus *EventBusImpl
}

func (t *trackerEvents) publish(eventType string, ts time.Time, data map[string]interface{}) {
	t.eventBus.Publish(Event{Type: eventType, Timestamp: ts, Data: data})
}

type fileTrackerEvents struct{ trackerEvents }

func (f *fileTrackerEvents) Publish(event filetracker.Event) {
	f.publish(event.Type, event.Timestamp, event.Data)
}

type timingTrackerEvents struct{ trackerEvents }

func (t *timingTrackerEvents) Publish(event timing.Event) {
	t.publish(event.Type, event.Timestamp, event.Data)
}

type TimingTrackerImpl struct {
	tracker *timing.Tracker
}

func (t *TimingTrackerImpl) StartTiming(operation string) context.Context {
	return t.tracker.StartTiming(operation)
}

func (t *TimingTrackerImpl) EndTiming(ctx context.Context) {
	t.tracker.EndTiming(ctx)
}

func (t *TimingTrackerImpl) GetTimings(operation string) []time.Duration {
	return t.tracker.GetTimings(operation)
}

type FileTrackerImpl struct {
	tracker *filetracker.Tracker
}

func (f *FileTrackerImpl) TrackOpen(path string, handle uintptr) {
	f.tracker.TrackOpen(path, handle)
}

func (f *FileTrackerImpl) TrackClose(path string, handle uintptr) {
	f.tracker.TrackClose(path, handle)
}

func (f *FileTrackerImpl) GetOpenFiles() map[string]FileInfo {
	files := f.tracker.GetOpenFiles()
	result := make(map[string]FileInfo, len(files))
	for k, v := range files {
		result[k] = FileInfo(v)
	}
	return result
}

func (f *FileTrackerImpl) DetectLeaks() []FileInfo {
	leaks := f.tracker.DetectLeaks()
	result := make([]FileInfo, len(leaks))
	for i, v := range leaks {
		result[i] = FileInfo(v)
	}
	return result
}

// eventLogger writes bus traffic to the debug log
type eventLogger struct {
	logger Logger
}

func (e *eventLogger) Handle(event Event) {
	e.logger.Debug("EventBus", event.Type, event.Data)
}

func (e *eventLogger) GetID() string {
	return "event-logger"
}

type DebugCoordinator struct {
	logger        Logger
	timingTracker TimingTracker
	fileTracker   FileTracker
	eventBus      *EventBusImpl
}

func NewCoordinator(config Config) *DebugCoordinator {
	eventBus := &EventBusImpl{Bus: eventbus.NewBus(config.EventBufferSize)}

	var loggerImpl Logger
	if config.EnableLogging {
		out := config.Output
		if out == nil {
			out = os.Stdout
		}
		loggerImpl = logger.New(out, logger.Level(config.LogLevel), config.UseJSONLogging)
	} else {
		loggerImpl = logger.NoOpLogger{}
	}

	fileTracker := filetracker.NewTracker(&fileTrackerEvents{trackerEvents{eventBus}})
	fileTracker.SetEnabled(config.EnableFileTracking)

	timingTracker := timing.NewTracker(&timingTrackerEvents{trackerEvents{eventBus}})
	timingTracker.SetEnabled(config.EnableTimingTracking)

	if config.EnableLogging && logger.Level(config.LogLevel) == logger.LevelDebug {
		tap := &eventLogger{logger: loggerImpl}
		for _, eventType := range []string{
			EventTimingCompleted, EventFileOpened, EventFileClosed, EventDocumentChanged,
		} {
			eventBus.Subscribe(eventType, tap)
		}
	}

	return &DebugCoordinator{
		logger:        loggerImpl,
		timingTracker: &TimingTrackerImpl{tracker: timingTracker},
		fileTracker:   &FileTrackerImpl{tracker: fileTracker},
		eventBus:      eventBus,
	}
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) FileTracker() FileTracker {
	return dc.fileTracker
}

func (dc *DebugCoordinator) EventPublisher() EventPublisher {
	return dc.eventBus
}

// Shutdown reports leaked handles and stops the event bus.
func (dc *DebugCoordinator) Shutdown() {
	for _, leak := range dc.fileTracker.DetectLeaks() {
		dc.logger.Warning("DebugCoordinator", "file handle still open at shutdown", map[string]interface{}{
			"path":      leak.Path,
			"opened_at": leak.OpenedAt,
		})
	}
	dc.eventBus.Bus.Shutdown()
}

type Config struct {
	EnableLogging        bool
	EnableFileTracking   bool
	EnableTimingTracking bool
	UseJSONLogging       bool
	LogLevel             int
	EventBufferSize      int
	Output               io.Writer
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableFileTracking:   true,
		EnableTimingTracking: true,
		UseJSONLogging:       false,
		LogLevel:             int(logger.LevelInfo),
		EventBufferSize:      256,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableFileTracking:   false,
		EnableTimingTracking: false,
		UseJSONLogging:       true,
		LogLevel:             int(logger.LevelError),
		EventBufferSize:      64,
	}
}
