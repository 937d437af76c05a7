// Package watch reports writes to the open document made by other programs.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuietPeriod is how long events are ignored after the editor writes the file itself.
const DefaultQuietPeriod = time.Second

type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Watcher watches the directory of one file at a time. Watching the directory
// instead of the file survives editors and tools that replace files by rename.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   Logger
	onChange func(path string)

	mu          sync.Mutex
	path        string
	dir         string
	ignoreUntil time.Time
	quiet       time.Duration
	now         func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// New starts the event loop. onChange runs on the watcher goroutine.
func New(logger Logger, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		logger:   logger,
		onChange: onChange,
		quiet:    DefaultQuietPeriod,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch replaces the watched file with path.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir == dir {
		w.path = abs
		return nil
	}
	w.removeLocked()

	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.path = abs
	w.dir = dir

	w.logger.Debug("Watcher", "watching file", map[string]interface{}{"path": abs})
	return nil
}

// Stop forgets the watched file, e.g. after New.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeLocked()
}

// Suppress ignores changes for the quiet period; call it right before the editor saves.
func (w *Watcher) Suppress() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ignoreUntil = w.now().Add(w.quiet)
}

// Watching returns the absolute path currently watched, or "".
func (w *Watcher) Watching() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Shutdown lets the shutdown manager close the watcher.
func (w *Watcher) Shutdown() {
	if err := w.Close(); err != nil {
		w.logger.Error("Watcher", err, nil)
	}
}

func (w *Watcher) removeLocked() {
	if w.dir != "" {
		if err := w.watcher.Remove(w.dir); err != nil {
			w.logger.Warning("Watcher", "remove watch failed", map[string]interface{}{
				"dir":   w.dir,
				"error": err.Error(),
			})
		}
	}
	w.path = ""
	w.dir = ""
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher", err, nil)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	path := w.path
	suppressed := w.now().Before(w.ignoreUntil)
	w.mu.Unlock()

	if path == "" || filepath.Clean(event.Name) != path {
		return
	}
	if suppressed {
		w.logger.Debug("Watcher", "ignoring own write", map[string]interface{}{"path": path})
		return
	}

	if w.onChange != nil {
		w.onChange(path)
	}
}
