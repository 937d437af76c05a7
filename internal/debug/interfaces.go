package debug

import (
	"context"
	"time"
)

// EventPublisher distributes editor events to subscribers without blocking the UI
type EventPublisher interface {
	Publish(event Event)
	Subscribe(eventType string, handler EventHandler)
	Unsubscribe(eventType string, handler EventHandler)
}

// EventHandler processes published events on the bus worker
type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// Event represents a debug event with contextual data
type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
	Context   context.Context
}

// Logger provides structured logging with context
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// TimingTracker measures file operation durations
type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
	GetTimings(operation string) []time.Duration
}

// FileTracker monitors file handle lifecycle
type FileTracker interface {
	TrackOpen(path string, handle uintptr)
	TrackClose(path string, handle uintptr)
	GetOpenFiles() map[string]FileInfo
	DetectLeaks() []FileInfo
}

// FileInfo contains file handle information
type FileInfo struct {
	Path       string
	Handle     uintptr
	OpenedAt   time.Time
	StackTrace []uintptr
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	FileTracker() FileTracker
	EventPublisher() EventPublisher
	Shutdown()
}

// Event types published by the editor
const (
	EventTimingStarted   = "timing_started"
	EventTimingCompleted = "timing_completed"
	EventFileOpened      = "file_opened"
	EventFileClosed      = "file_closed"
	EventDocumentChanged = "document_changed"
)
