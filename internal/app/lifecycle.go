package app

import (
	"sync"

	"textpad/internal/debug"
	"textpad/internal/watch"
)

type Lifecycle struct {
	watcher    *watch.Watcher
	debugCoord debug.Coordinator
	logger     debug.Logger
	once       sync.Once
}

func NewLifecycle(w *watch.Watcher, dc debug.Coordinator) *Lifecycle {
	return &Lifecycle{
		watcher:    w,
		debugCoord: dc,
		logger:     dc.Logger(),
	}
}

// Shutdown releases the watcher and then the debug coordinator. Safe to call
// from both the window close hook and the shutdown manager.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if l.watcher != nil {
			l.watcher.Shutdown()
			l.logger.Debug("Lifecycle", "file watcher closed", nil)
		}

		// Last, so the cleanup above is still logged.
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
		l.debugCoord.Shutdown()
	})
}
