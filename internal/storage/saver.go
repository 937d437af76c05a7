package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultExt is appended by DefaultExtension to names typed without one.
const DefaultExt = ".txt"

type textSaver struct {
	logger        Logger
	timingTracker TimingTracker
	fileTracker   FileTracker
}

// Save truncates or creates path and writes text byte for byte.
func (s *textSaver) Save(path, text string) error {
	if path == "" {
		return ErrEmptyPath
	}

	ctx := s.timingTracker.StartTiming("save_text")
	defer s.timingTracker.EndTiming(ctx)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	handle := f.Fd()
	s.fileTracker.TrackOpen(path, handle)

	_, writeErr := io.WriteString(f, text)
	closeErr := f.Close()
	s.fileTracker.TrackClose(path, handle)

	if writeErr != nil {
		return fmt.Errorf("write %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	s.logger.Debug("TextSaver", "file written", map[string]interface{}{
		"path":       path,
		"size_bytes": len(text),
	})

	return nil
}

// DefaultExtension appends ".txt" when the base name of path has no extension.
func DefaultExtension(path string) string {
	if path == "" {
		return path
	}
	if filepath.Ext(filepath.Base(path)) != "" {
		return path
	}
	return path + DefaultExt
}

// SaveTarget is the file a picked save path is written to. The default
// extension is added only when neither the picked file nor its ".txt"
// sibling exists, so no file the user did not confirm is overwritten.
func SaveTarget(picked string) string {
	target := DefaultExtension(picked)
	if target == picked {
		return picked
	}
	if exists(picked) || exists(target) {
		return picked
	}
	return target
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
