package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"textpad/internal/debug"
)

const (
	confirmTitle   = "Save Changes"
	confirmMessage = "Do you want to save changes before continuing?"
)

var fileDialogSize = fyne.NewSize(720, 520)

// FynePrompter shows fyne's own dialogs inside the editor window.
type FynePrompter struct {
	window fyne.Window
	logger debug.Logger
}

func NewFynePrompter(window fyne.Window, logger debug.Logger) *FynePrompter {
	return &FynePrompter{window: window, logger: logger}
}

func (p *FynePrompter) ConfirmSave(onResponse func(SaveChoice)) {
	var d *dialog.CustomDialog

	answer := func(choice SaveChoice) func() {
		return func() {
			d.Hide()
			onResponse(choice)
		}
	}

	yes := widget.NewButton("Yes", answer(SaveYes))
	yes.Importance = widget.HighImportance
	no := widget.NewButton("No", answer(SaveNo))
	cancel := widget.NewButton("Cancel", answer(SaveCancel))

	d = dialog.NewCustomWithoutButtons(confirmTitle, widget.NewLabel(confirmMessage), p.window)
	d.SetButtons([]fyne.CanvasObject{cancel, no, yes})
	d.Show()
}

// PickOpen lists every file; fyne's picker takes a single filter, so the
// "Text Files" restriction is left to the native picker.
func (p *FynePrompter) PickOpen(onPicked func(path string, err error)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			onPicked("", err)
			return
		}
		if reader == nil {
			onPicked("", nil)
			return
		}
		path := reader.URI().Path()
		p.closePicked("open", path, reader)
		onPicked(path, nil)
	}, p.window)
	fd.Resize(fileDialogSize)
	fd.Show()
}

// PickSave shows the save picker. fyne creates the chosen file as soon as it
// is picked, so the editor keeps writing to exactly that name.
func (p *FynePrompter) PickSave(suggested string, onPicked func(path string, err error)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			onPicked("", err)
			return
		}
		if writer == nil {
			onPicked("", nil)
			return
		}
		path := writer.URI().Path()
		p.closePicked("save", path, writer)
		onPicked(path, nil)
	}, p.window)
	fd.SetFileName(suggested)
	fd.Resize(fileDialogSize)
	fd.Show()
}

func (p *FynePrompter) ShowError(err error) {
	dialog.ShowError(err, p.window)
}

// closePicked releases the handle the fyne picker opened. Only the path is used.
func (p *FynePrompter) closePicked(action, path string, c interface{ Close() error }) {
	if err := c.Close(); err != nil {
		p.logger.Warning("FynePrompter", "closing picked file failed", map[string]interface{}{
			"action": action,
			"path":   path,
			"error":  err.Error(),
		})
	}
}
