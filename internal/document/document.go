// Package document holds the state of the single open document: which file it
// belongs to and whether the buffer has diverged from that file.
//
// The text itself lives in the text widget. Document only tracks the
// bookkeeping around it and derives the window title and status messages.
package document

import (
	"fmt"
	"path/filepath"
)

const (
	AppTitle     = "Text Editor"
	UntitledName = "Untitled"
	DirtyMarker  = "*"
)

// State is one cell of {untitled, named} x {clean, dirty}.
type State int

const (
	UntitledClean State = iota
	UntitledDirty
	NamedClean
	NamedDirty
)

func (s State) String() string {
	switch s {
	case UntitledClean:
		return "untitled-clean"
	case UntitledDirty:
		return "untitled-dirty"
	case NamedClean:
		return "named-clean"
	case NamedDirty:
		return "named-dirty"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Document is owned by the UI goroutine and is not safe for concurrent use.
type Document struct {
	path     string
	modified bool
}

func New() *Document {
	return &Document{}
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) IsUntitled() bool {
	return d.path == ""
}

func (d *Document) IsModified() bool {
	return d.modified
}

// Name is the base name of the backing file, or "Untitled".
func (d *Document) Name() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// Title is the window title, e.g. "Text Editor - notes.txt*".
func (d *Document) Title() string {
	title := AppTitle + " - " + d.Name()
	if d.modified {
		title += DirtyMarker
	}
	return title
}

func (d *Document) State() State {
	switch {
	case d.path == "" && !d.modified:
		return UntitledClean
	case d.path == "":
		return UntitledDirty
	case !d.modified:
		return NamedClean
	default:
		return NamedDirty
	}
}

// Reset returns to an untitled, clean document.
func (d *Document) Reset() {
	d.path = ""
	d.modified = false
}

// Loaded records that the buffer now holds the contents of path.
func (d *Document) Loaded(path string) {
	d.path = path
	d.modified = false
}

// Saved records that the buffer was written to path.
func (d *Document) Saved(path string) {
	d.path = path
	d.modified = false
}

// MarkModified flags the buffer as dirty and reports whether it was clean before.
func (d *Document) MarkModified() bool {
	if d.modified {
		return false
	}
	d.modified = true
	return true
}

// Status messages shown after each transition.
const (
	StatusReady   = "Ready"
	StatusNewFile = "New file created"
)

func StatusOpened(path string) string {
	return "Opened: " + path
}

func StatusSaved(path string) string {
	return "Saved: " + path
}

func StatusSavedAs(path string) string {
	return "Saved as: " + path
}

func StatusChangedOnDisk(path string) string {
	return "File changed on disk: " + filepath.Base(path)
}
