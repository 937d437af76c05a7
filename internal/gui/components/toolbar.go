package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Toolbar struct {
	container    *fyne.Container
	NewButton    *widget.Button
	OpenButton   *widget.Button
	SaveButton   *widget.Button
	UndoButton   *widget.Button
	RedoButton   *widget.Button
	FileGroup    *fyne.Container
	HistoryGroup *fyne.Container

	newHandler  func()
	openHandler func()
	saveHandler func()
	undoHandler func()
	redoHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 231, G: 231, B: 231, A: 255}

	t.NewButton = widget.NewButtonWithIcon("New", theme.DocumentCreateIcon(), t.onNew)
	t.OpenButton = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), t.onOpen)
	t.SaveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), t.onSave)
	t.FileGroup = container.NewHBox(t.NewButton, t.OpenButton, t.SaveButton)

	t.UndoButton = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), t.onUndo)
	t.RedoButton = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), t.onRedo)
	t.HistoryGroup = container.NewHBox(t.UndoButton, t.RedoButton)

	content := container.NewHBox(
		t.FileGroup,
		widget.NewSeparator(),
		t.HistoryGroup,
	)

	t.container = container.NewStack(border, container.NewPadded(content))
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetNewHandler(handler func()) {
	t.newHandler = handler
}

func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

func (t *Toolbar) SetUndoHandler(handler func()) {
	t.undoHandler = handler
}

func (t *Toolbar) SetRedoHandler(handler func()) {
	t.redoHandler = handler
}

func (t *Toolbar) onNew() {
	if t.newHandler != nil {
		t.newHandler()
	}
}

func (t *Toolbar) onOpen() {
	if t.openHandler != nil {
		t.openHandler()
	}
}

func (t *Toolbar) onSave() {
	if t.saveHandler != nil {
		t.saveHandler()
	}
}

func (t *Toolbar) onUndo() {
	if t.undoHandler != nil {
		t.undoHandler()
	}
}

func (t *Toolbar) onRedo() {
	if t.redoHandler != nil {
		t.redoHandler()
	}
}
