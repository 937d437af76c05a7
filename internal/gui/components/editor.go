package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// textEntry lets window-level shortcuts (Ctrl+N, Ctrl+S, ...) through while the
// entry has focus, and reports undo and redo, which do not fire OnChanged.
type textEntry struct {
	widget.Entry
	shortcuts map[string]func()
	onHistory func()
}

func newTextEntry() *textEntry {
	e := &textEntry{shortcuts: make(map[string]func())}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

func (e *textEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if handler, ok := e.shortcuts[shortcut.ShortcutName()]; ok {
		handler()
		return
	}

	switch shortcut.(type) {
	case *fyne.ShortcutUndo, *fyne.ShortcutRedo:
		e.stepHistory(func() { e.Entry.TypedShortcut(shortcut) })
	default:
		e.Entry.TypedShortcut(shortcut)
	}
}

// stepHistory runs an undo or redo step and reports it when the text moved.
func (e *textEntry) stepHistory(step func()) {
	before := e.Text
	step()
	if e.Text != before && e.onHistory != nil {
		e.onHistory()
	}
}

// TextSurface is the scrollable editing area. It owns the buffer and its
// undo history; callers only read and replace the text.
type TextSurface struct {
	entry     *textEntry
	clipboard fyne.Clipboard

	replacing bool
	onEdited  func()
}

func NewTextSurface(clipboard fyne.Clipboard) *TextSurface {
	s := &TextSurface{
		entry:     newTextEntry(),
		clipboard: clipboard,
	}
	s.entry.OnChanged = s.changed
	s.entry.onHistory = s.edited
	return s
}

// Widget is the canvas object to place in the window layout.
func (s *TextSurface) Widget() fyne.CanvasObject {
	return s.entry
}

// Focusable exposes the entry for focusing and for driving it in tests.
func (s *TextSurface) Focusable() fyne.Focusable {
	return s.entry
}

// SetOnEdited registers the callback fired for user edits, not for Replace.
func (s *TextSurface) SetOnEdited(handler func()) {
	s.onEdited = handler
}

// AddShortcut routes a shortcut typed inside the entry to handler.
func (s *TextSurface) AddShortcut(shortcut fyne.Shortcut, handler func()) {
	s.entry.shortcuts[shortcut.ShortcutName()] = handler
}

func (s *TextSurface) Text() string {
	return s.entry.Text
}

// Replace swaps the whole buffer without reporting an edit.
func (s *TextSurface) Replace(text string) {
	s.replacing = true
	defer func() { s.replacing = false }()

	s.entry.SetText(text)
	s.entry.CursorRow = 0
	s.entry.CursorColumn = 0
	s.entry.Refresh()
}

func (s *TextSurface) Undo() {
	s.entry.stepHistory(s.entry.Undo)
}

func (s *TextSurface) Redo() {
	s.entry.stepHistory(s.entry.Redo)
}

func (s *TextSurface) Cut() {
	s.entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: s.clipboard})
}

func (s *TextSurface) Copy() {
	s.entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: s.clipboard})
}

func (s *TextSurface) Paste() {
	s.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: s.clipboard})
}

func (s *TextSurface) SelectAll() {
	s.entry.TypedShortcut(&fyne.ShortcutSelectAll{})
}

// SelectedText returns the current selection, or "".
func (s *TextSurface) SelectedText() string {
	return s.entry.SelectedText()
}

func (s *TextSurface) changed(string) {
	if s.replacing {
		return
	}
	s.edited()
}

func (s *TextSurface) edited() {
	if s.onEdited != nil {
		s.onEdited()
	}
}
