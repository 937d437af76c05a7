package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	sqdialog "github.com/sqweek/dialog"

	"textpad/internal/debug"
)

// NativePrompter uses the operating system's file pickers, which offer both the
// "Text Files" and "All Files" filters. The pickers block the UI goroutine until
// they return. Confirmation and errors still use fyne dialogs.
type NativePrompter struct {
	*FynePrompter
}

func NewNativePrompter(window fyne.Window, logger debug.Logger) *NativePrompter {
	return &NativePrompter{FynePrompter: NewFynePrompter(window, logger)}
}

func (p *NativePrompter) PickOpen(onPicked func(path string, err error)) {
	path, err := sqdialog.File().
		Title("Open").
		Filter("Text Files", "txt").
		Filter("All Files", "*").
		Load()
	onPicked(nativeResult(path, err))
}

func (p *NativePrompter) PickSave(suggested string, onPicked func(path string, err error)) {
	path, err := sqdialog.File().
		Title("Save As").
		Filter("Text Files", "txt").
		Filter("All Files", "*").
		SetStartFile(suggested).
		Save()
	onPicked(nativeResult(path, err))
}

func nativeResult(path string, err error) (string, error) {
	if errors.Is(err, sqdialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
