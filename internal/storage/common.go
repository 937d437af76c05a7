package storage

import (
	"context"
	"errors"
)

var (
	// ErrInvalidEncoding is returned for files whose bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
	ErrEmptyPath       = errors.New("no file path given")
)

// Common interfaces satisfied by the debug coordinator's components
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
}

type FileTracker interface {
	TrackOpen(path string, handle uintptr)
	TrackClose(path string, handle uintptr)
}
