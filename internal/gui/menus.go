package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func buildMainMenu(c *Controller) *fyne.MainMenu {
	newItem := fyne.NewMenuItem("New", c.NewFile)
	newItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}

	openItem := fyne.NewMenuItem("Open", c.OpenFile)
	openItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}

	saveItem := fyne.NewMenuItem("Save", c.SaveFile)
	saveItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}

	saveAsItem := fyne.NewMenuItem("Save As", c.SaveFileAs)
	saveAsItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}

	// IsQuit stops fyne from appending its own Quit item, which would skip the save-guard.
	exitItem := fyne.NewMenuItem("Exit", c.RequestClose)
	exitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		newItem,
		openItem,
		saveItem,
		saveAsItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	undoItem := fyne.NewMenuItem("Undo", c.Undo)
	undoItem.Shortcut = &fyne.ShortcutUndo{}
	redoItem := fyne.NewMenuItem("Redo", c.Redo)
	redoItem.Shortcut = &fyne.ShortcutRedo{}

	cutItem := fyne.NewMenuItem("Cut", c.Cut)
	cutItem.Shortcut = &fyne.ShortcutCut{}
	copyItem := fyne.NewMenuItem("Copy", c.Copy)
	copyItem.Shortcut = &fyne.ShortcutCopy{}
	pasteItem := fyne.NewMenuItem("Paste", c.Paste)
	pasteItem.Shortcut = &fyne.ShortcutPaste{}

	selectAllItem := fyne.NewMenuItem("Select All", c.SelectAll)
	selectAllItem.Shortcut = &fyne.ShortcutSelectAll{}

	editMenu := fyne.NewMenu("Edit",
		undoItem,
		redoItem,
		fyne.NewMenuItemSeparator(),
		cutItem,
		copyItem,
		pasteItem,
		fyne.NewMenuItemSeparator(),
		selectAllItem,
	)

	return fyne.NewMainMenu(fileMenu, editMenu)
}
