package gui

import "fmt"

// SaveChoice is the answer to the unsaved-changes question.
type SaveChoice int

const (
	SaveCancel SaveChoice = iota
	SaveYes
	SaveNo
)

func (c SaveChoice) String() string {
	switch c {
	case SaveYes:
		return "yes"
	case SaveNo:
		return "no"
	default:
		return "cancel"
	}
}

// Prompter shows the dialogs the editor needs. Callbacks run on the UI
// goroutine; a picker reports cancellation as an empty path and nil error.
type Prompter interface {
	ConfirmSave(onResponse func(SaveChoice))
	PickOpen(onPicked func(path string, err error))
	PickSave(suggested string, onPicked func(path string, err error))
	ShowError(err error)
}

// Surface is the editable text area.
type Surface interface {
	Text() string
	Replace(text string)
	Undo()
	Redo()
	Cut()
	Copy()
	Paste()
	SelectAll()
}

// Chrome is the window around the text: title, status line and closing.
type Chrome interface {
	SetTitle(title string)
	SetStatus(status string)
	Close()
}

// TextStore reads and writes whole text files.
type TextStore interface {
	Load(path string) (string, error)
	Save(path, text string) error
}

// FileWatcher follows the current file for changes made by other programs.
type FileWatcher interface {
	Watch(path string) error
	Stop()
	Suppress()
}

// FileError is what the user sees when reading or writing a file fails.
type FileError struct {
	Action string
	Path   string
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("Failed to %s file:\n%v", e.Action, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
