package storage

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

type textLoader struct {
	logger        Logger
	timingTracker TimingTracker
	fileTracker   FileTracker
}

// Load reads the whole file at path. The bytes are returned unchanged: no BOM
// stripping and no newline translation, so a later Save reproduces them exactly.
func (l *textLoader) Load(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	ctx := l.timingTracker.StartTiming("load_text")
	defer l.timingTracker.EndTiming(ctx)

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	handle := f.Fd()
	l.fileTracker.TrackOpen(path, handle)
	defer func() {
		f.Close()
		l.fileTracker.TrackClose(path, handle)
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	l.logger.Debug("TextLoader", "file read", map[string]interface{}{
		"path":       path,
		"size_bytes": len(data),
	})

	return string(data), nil
}
