package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"textpad/internal/gui/components"
)

// View builds the editor window: menu bar, toolbar, text surface and status bar.
type View struct {
	window     fyne.Window
	controller *Controller

	toolbar       *components.Toolbar
	surface       *components.TextSurface
	statusBar     *components.StatusBar
	mainContainer *fyne.Container
}

func NewView(window fyne.Window, clipboard fyne.Clipboard) *View {
	view := &View{
		window: window,
	}

	view.setupComponents(clipboard)
	view.setupLayout()

	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.setupEventHandlers()
	controller.SetView(v.surface, v)
}

func (v *View) setupComponents(clipboard fyne.Clipboard) {
	v.toolbar = components.NewToolbar()
	v.surface = components.NewTextSurface(clipboard)
	v.statusBar = components.NewStatusBar()
}

func (v *View) setupLayout() {
	v.mainContainer = container.NewBorder(
		v.toolbar.GetContainer(),
		v.statusBar.GetContainer(),
		nil,
		nil,
		container.NewPadded(v.surface.Widget()),
	)
}

func (v *View) setupEventHandlers() {
	if v.controller == nil {
		return
	}

	v.toolbar.SetNewHandler(v.controller.NewFile)
	v.toolbar.SetOpenHandler(v.controller.OpenFile)
	v.toolbar.SetSaveHandler(v.controller.SaveFile)
	v.toolbar.SetUndoHandler(v.controller.Undo)
	v.toolbar.SetRedoHandler(v.controller.Redo)

	v.surface.SetOnEdited(v.controller.TextEdited)

	v.window.SetMainMenu(buildMainMenu(v.controller))

	for _, s := range windowShortcuts(v.controller) {
		handler := s.handler
		v.window.Canvas().AddShortcut(s.shortcut, func(fyne.Shortcut) { handler() })
		v.surface.AddShortcut(s.shortcut, handler)
	}

	v.window.SetCloseIntercept(v.controller.RequestClose)
}

// Chrome

func (v *View) SetTitle(title string) {
	v.window.SetTitle(title)
}

func (v *View) SetStatus(status string) {
	v.statusBar.SetStatus(status)
}

func (v *View) Close() {
	v.window.Close()
}

// Accessors

func (v *View) Toolbar() *components.Toolbar {
	return v.toolbar
}

func (v *View) Surface() *components.TextSurface {
	return v.surface
}

func (v *View) Status() string {
	return v.statusBar.Status()
}

func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Canvas().Focus(v.surface.Focusable())
	v.window.Show()
}

type windowShortcut struct {
	shortcut *desktop.CustomShortcut
	handler  func()
}

func windowShortcuts(c *Controller) []windowShortcut {
	return []windowShortcut{
		{&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}, c.NewFile},
		{&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}, c.OpenFile},
		{&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, c.SaveFile},
		{&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, c.SaveFileAs},
	}
}
