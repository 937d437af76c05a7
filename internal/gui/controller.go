package gui

import (
	"path/filepath"

	"textpad/internal/debug"
	"textpad/internal/document"
	"textpad/internal/storage"
)

// Controller implements the editor commands on top of the view, the dialogs
// and the file store. All methods run on the UI goroutine.
type Controller struct {
	doc      *document.Document
	store    TextStore
	logger   debug.Logger
	events   debug.EventPublisher
	surface  Surface
	chrome   Chrome
	prompter Prompter
	watcher  FileWatcher
}

func NewController(store TextStore, debugCoord debug.Coordinator) *Controller {
	return &Controller{
		doc:    document.New(),
		store:  store,
		logger: debugCoord.Logger(),
		events: debugCoord.EventPublisher(),
	}
}

// SetView attaches the text surface and window chrome and shows the initial title.
func (c *Controller) SetView(surface Surface, chrome Chrome) {
	c.surface = surface
	c.chrome = chrome
	c.chrome.SetTitle(c.doc.Title())
	c.chrome.SetStatus(document.StatusReady)
}

func (c *Controller) SetPrompter(prompter Prompter) {
	c.prompter = prompter
}

// SetWatcher enables external change notices. A nil watcher disables them.
func (c *Controller) SetWatcher(watcher FileWatcher) {
	c.watcher = watcher
}

func (c *Controller) Document() *document.Document {
	return c.doc
}

// File operations

func (c *Controller) NewFile() {
	c.guard("new", func() {
		c.surface.Replace("")
		c.doc.Reset()
		if c.watcher != nil {
			c.watcher.Stop()
		}
		c.refresh(document.StatusNewFile)
	})
}

func (c *Controller) OpenFile() {
	c.guard("open", func() {
		c.prompter.PickOpen(func(path string, err error) {
			if err != nil {
				c.handleError(&FileError{Action: "open", Err: err})
				return
			}
			if path == "" {
				c.logger.Debug("Controller", "open cancelled", nil)
				return
			}
			c.load(path)
		})
	})
}

func (c *Controller) SaveFile() {
	c.save(nil)
}

func (c *Controller) SaveFileAs() {
	c.saveAs(nil)
}

// RequestClose runs the save-guard and closes the window if it allows.
func (c *Controller) RequestClose() {
	c.guard("close", func() {
		c.logger.Info("Controller", "closing window", map[string]interface{}{
			"state": c.doc.State().String(),
		})
		c.chrome.Close()
	})
}

// Editing commands are delegated to the text widget.

func (c *Controller) Undo()      { c.surface.Undo() }
func (c *Controller) Redo()      { c.surface.Redo() }
func (c *Controller) Cut()       { c.surface.Cut() }
func (c *Controller) Copy()      { c.surface.Copy() }
func (c *Controller) Paste()     { c.surface.Paste() }
func (c *Controller) SelectAll() { c.surface.SelectAll() }

// TextEdited is called for every user edit of the buffer.
func (c *Controller) TextEdited() {
	if c.doc.MarkModified() {
		c.chrome.SetTitle(c.doc.Title())
		c.publish()
	}
}

// ExternalChange is called when another program wrote the open file.
func (c *Controller) ExternalChange(path string) {
	current, err := filepath.Abs(c.doc.Path())
	if c.doc.IsUntitled() || err != nil || current != path {
		return
	}
	c.logger.Info("Controller", "file changed on disk", map[string]interface{}{"path": path})
	c.chrome.SetStatus(document.StatusChangedOnDisk(path))
}

// guard asks about unsaved changes before proceed runs. "Yes" saves first and
// only proceeds once the save went through.
func (c *Controller) guard(action string, proceed func()) {
	if !c.doc.IsModified() {
		proceed()
		return
	}

	c.prompter.ConfirmSave(func(choice SaveChoice) {
		c.logger.Debug("Controller", "save-guard answered", map[string]interface{}{
			"action": action,
			"choice": choice.String(),
		})

		switch choice {
		case SaveYes:
			c.save(func(saved bool) {
				if saved {
					proceed()
				}
			})
		case SaveNo:
			proceed()
		}
	})
}

func (c *Controller) save(done func(saved bool)) {
	if c.doc.IsUntitled() {
		c.saveAs(done)
		return
	}
	finish(done, c.writeTo(c.doc.Path(), document.StatusSaved))
}

func (c *Controller) saveAs(done func(saved bool)) {
	c.prompter.PickSave(c.suggestedName(), func(path string, err error) {
		if err != nil {
			c.handleError(&FileError{Action: "save", Err: err})
			finish(done, false)
			return
		}
		if path == "" {
			c.logger.Debug("Controller", "save as cancelled", nil)
			finish(done, false)
			return
		}
		finish(done, c.writeTo(storage.SaveTarget(path), document.StatusSavedAs))
	})
}

func (c *Controller) writeTo(path string, status func(string) string) bool {
	if c.watcher != nil {
		c.watcher.Suppress()
	}

	if err := c.store.Save(path, c.surface.Text()); err != nil {
		c.handleError(&FileError{Action: "save", Path: path, Err: err})
		return false
	}

	c.doc.Saved(path)
	c.follow(path)
	c.refresh(status(path))

	c.logger.Info("Controller", "file saved", map[string]interface{}{"path": path})
	return true
}

func (c *Controller) load(path string) {
	text, err := c.store.Load(path)
	if err != nil {
		c.handleError(&FileError{Action: "open", Path: path, Err: err})
		return
	}

	c.surface.Replace(text)
	c.doc.Loaded(path)
	c.follow(path)
	c.refresh(document.StatusOpened(path))

	c.logger.Info("Controller", "file opened", map[string]interface{}{
		"path":       path,
		"size_bytes": len(text),
	})
}

func (c *Controller) follow(path string) {
	if c.watcher == nil {
		return
	}
	if err := c.watcher.Watch(path); err != nil {
		c.logger.Warning("Controller", "cannot watch file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

func (c *Controller) suggestedName() string {
	if c.doc.IsUntitled() {
		return document.UntitledName + storage.DefaultExt
	}
	return c.doc.Name()
}

func (c *Controller) refresh(status string) {
	c.chrome.SetTitle(c.doc.Title())
	c.chrome.SetStatus(status)
	c.publish()
}

func (c *Controller) publish() {
	if c.events == nil {
		return
	}
	c.events.Publish(debug.Event{
		Type: debug.EventDocumentChanged,
		Data: map[string]interface{}{
			"state": c.doc.State().String(),
			"path":  c.doc.Path(),
		},
	})
}

func (c *Controller) handleError(err *FileError) {
	c.logger.Error("Controller", err.Err, map[string]interface{}{
		"action": err.Action,
		"path":   err.Path,
	})
	c.prompter.ShowError(err)
}

func finish(done func(bool), saved bool) {
	if done != nil {
		done(saved)
	}
}
