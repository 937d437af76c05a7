package gui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textpad/internal/debug"
	"textpad/internal/document"
	"textpad/internal/storage"
)

type fakeSurface struct {
	text  string
	calls []string
}

func (s *fakeSurface) Text() string        { return s.text }
func (s *fakeSurface) Replace(text string) { s.text = text }
func (s *fakeSurface) Undo()               { s.calls = append(s.calls, "undo") }
func (s *fakeSurface) Redo()               { s.calls = append(s.calls, "redo") }
func (s *fakeSurface) Cut()                { s.calls = append(s.calls, "cut") }
func (s *fakeSurface) Copy()               { s.calls = append(s.calls, "copy") }
func (s *fakeSurface) Paste()              { s.calls = append(s.calls, "paste") }
func (s *fakeSurface) SelectAll()          { s.calls = append(s.calls, "select-all") }

// typeText simulates a user edit.
func (s *fakeSurface) typeText(c *Controller, text string) {
	s.text += text
	c.TextEdited()
}

type fakeChrome struct {
	title  string
	status string
	closed bool
}

func (c *fakeChrome) SetTitle(title string)   { c.title = title }
func (c *fakeChrome) SetStatus(status string) { c.status = status }
func (c *fakeChrome) Close()                  { c.closed = true }

// fakePrompter answers every dialog synchronously with preset responses.
type fakePrompter struct {
	choice    SaveChoice
	openPath  string
	savePath  string
	pickErr   error
	confirms  int
	opens     int
	saves     int
	suggested string
	errs      []error
}

func (p *fakePrompter) ConfirmSave(onResponse func(SaveChoice)) {
	p.confirms++
	onResponse(p.choice)
}

func (p *fakePrompter) PickOpen(onPicked func(string, error)) {
	p.opens++
	onPicked(p.openPath, p.pickErr)
}

func (p *fakePrompter) PickSave(suggested string, onPicked func(string, error)) {
	p.saves++
	p.suggested = suggested
	onPicked(p.savePath, p.pickErr)
}

func (p *fakePrompter) ShowError(err error) {
	p.errs = append(p.errs, err)
}

type fakeWatcher struct {
	watching   string
	suppressed int
	stopped    int
}

func (w *fakeWatcher) Watch(path string) error { w.watching = path; return nil }
func (w *fakeWatcher) Stop()                   { w.watching = ""; w.stopped++ }
func (w *fakeWatcher) Suppress()               { w.suppressed++ }

type fixture struct {
	controller *Controller
	surface    *fakeSurface
	chrome     *fakeChrome
	prompter   *fakePrompter
	watcher    *fakeWatcher
	dir        string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	config := debug.DefaultConfig()
	config.EnableLogging = false
	coord := debug.NewCoordinator(config)
	t.Cleanup(coord.Shutdown)

	store := storage.NewStore(coord.Logger(), coord.TimingTracker(), coord.FileTracker())
	f := &fixture{
		controller: NewController(store, coord),
		surface:    &fakeSurface{},
		chrome:     &fakeChrome{},
		prompter:   &fakePrompter{},
		watcher:    &fakeWatcher{},
		dir:        t.TempDir(),
	}
	f.controller.SetView(f.surface, f.chrome)
	f.controller.SetPrompter(f.prompter)
	f.controller.SetWatcher(f.watcher)
	return f
}

func (f *fixture) writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitialViewState(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "Text Editor - Untitled", f.chrome.title)
	assert.Equal(t, "Ready", f.chrome.status)
}

func TestOpenSetsPathAndClearsModified(t *testing.T) {
	f := newFixture(t)
	path := f.writeFile(t, "notes.txt", "hello\nworld")
	f.prompter.openPath = path

	f.controller.OpenFile()

	doc := f.controller.Document()
	assert.Equal(t, path, doc.Path())
	assert.False(t, doc.IsModified())
	assert.Equal(t, "hello\nworld", f.surface.text)
	assert.Equal(t, "Text Editor - notes.txt", f.chrome.title)
	assert.Equal(t, "Opened: "+path, f.chrome.status)
	assert.Equal(t, path, f.watcher.watching)
	assert.Zero(t, f.prompter.confirms, "clean document opens without asking")
}

func TestEditAfterOpenMarksModified(t *testing.T) {
	f := newFixture(t)
	f.prompter.openPath = f.writeFile(t, "notes.txt", "hello")
	f.controller.OpenFile()

	f.surface.typeText(f.controller, "!")

	assert.True(t, f.controller.Document().IsModified())
	assert.Equal(t, "Text Editor - notes.txt*", f.chrome.title)
}

func TestSaveNamedDirtyWritesBuffer(t *testing.T) {
	f := newFixture(t)
	path := f.writeFile(t, "notes.txt", "hello")
	f.prompter.openPath = path
	f.controller.OpenFile()
	f.surface.typeText(f.controller, " wörld ✓")

	f.controller.SaveFile()

	assert.Equal(t, "hello wörld ✓", readFile(t, path))
	assert.False(t, f.controller.Document().IsModified())
	assert.Equal(t, "Text Editor - notes.txt", f.chrome.title)
	assert.Equal(t, "Saved: "+path, f.chrome.status)
	assert.Zero(t, f.prompter.saves, "named document saves without a picker")
	assert.Equal(t, 1, f.watcher.suppressed)
}

func TestSaveUntitledBehavesAsSaveAs(t *testing.T) {
	f := newFixture(t)
	f.surface.typeText(f.controller, "draft")
	target := filepath.Join(f.dir, "draft.txt")
	f.prompter.savePath = target

	f.controller.SaveFile()

	assert.Equal(t, 1, f.prompter.saves)
	assert.Equal(t, "Untitled.txt", f.prompter.suggested)
	assert.Equal(t, "draft", readFile(t, target))
	assert.Equal(t, target, f.controller.Document().Path())
	assert.False(t, f.controller.Document().IsModified())
	assert.Equal(t, "Saved as: "+target, f.chrome.status)
	assert.Equal(t, "Text Editor - draft.txt", f.chrome.title)
}

func TestSaveAsAddsDefaultExtension(t *testing.T) {
	f := newFixture(t)
	f.surface.typeText(f.controller, "draft")
	f.prompter.savePath = filepath.Join(f.dir, "draft")

	f.controller.SaveFileAs()

	want := filepath.Join(f.dir, "draft.txt")
	assert.Equal(t, want, f.controller.Document().Path())
	assert.Equal(t, "draft", readFile(t, want))
}

func TestSaveAsLeavesExistingTxtSiblingUntouched(t *testing.T) {
	f := newFixture(t)
	sibling := f.writeFile(t, "notes.txt", "keep me")
	f.surface.typeText(f.controller, "draft")
	picked := filepath.Join(f.dir, "notes")
	f.prompter.savePath = picked

	f.controller.SaveFileAs()

	assert.Equal(t, "keep me", readFile(t, sibling))
	assert.Equal(t, "draft", readFile(t, picked))
	assert.Equal(t, picked, f.controller.Document().Path())
	assert.False(t, f.controller.Document().IsModified())
}

func TestSaveAsOverExistingExtensionlessFileKeepsItsName(t *testing.T) {
	f := newFixture(t)
	picked := f.writeFile(t, "README", "old")
	f.surface.typeText(f.controller, "new")
	f.prompter.savePath = picked

	f.controller.SaveFileAs()

	assert.Equal(t, "new", readFile(t, picked))
	assert.NoFileExists(t, picked+".txt")
	assert.Equal(t, picked, f.controller.Document().Path())
}

func TestSaveAsCancelledKeepsState(t *testing.T) {
	f := newFixture(t)
	f.surface.typeText(f.controller, "draft")

	f.controller.SaveFileAs()

	assert.True(t, f.controller.Document().IsModified())
	assert.True(t, f.controller.Document().IsUntitled())
	assert.Empty(t, f.prompter.errs)
}

func TestSaveFailureShowsErrorAndKeepsDirty(t *testing.T) {
	f := newFixture(t)
	f.surface.typeText(f.controller, "draft")
	f.prompter.savePath = filepath.Join(f.dir, "missing-dir", "draft.txt")

	f.controller.SaveFile()

	require.Len(t, f.prompter.errs, 1)
	var fileErr *FileError
	require.ErrorAs(t, f.prompter.errs[0], &fileErr)
	assert.Equal(t, "save", fileErr.Action)
	assert.ErrorIs(t, f.prompter.errs[0], os.ErrNotExist)
	assert.Contains(t, f.prompter.errs[0].Error(), "Failed to save file:\n")
	assert.True(t, f.controller.Document().IsModified())
	assert.True(t, f.controller.Document().IsUntitled())
}

func TestOpenFailureLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	path := f.writeFile(t, "first.txt", "first")
	f.prompter.openPath = path
	f.controller.OpenFile()

	f.prompter.openPath = filepath.Join(f.dir, "missing.txt")
	f.controller.OpenFile()

	require.Len(t, f.prompter.errs, 1)
	assert.Contains(t, f.prompter.errs[0].Error(), "Failed to open file:\n")
	assert.Equal(t, path, f.controller.Document().Path())
	assert.Equal(t, "first", f.surface.text)
	assert.Equal(t, "Text Editor - first.txt", f.chrome.title)
}

func TestOpenRejectsInvalidUTF8(t *testing.T) {
	f := newFixture(t)
	f.prompter.openPath = f.writeFile(t, "latin1.txt", "caf\xe9")

	f.controller.OpenFile()

	require.Len(t, f.prompter.errs, 1)
	assert.ErrorIs(t, f.prompter.errs[0], storage.ErrInvalidEncoding)
	assert.True(t, f.controller.Document().IsUntitled())
}

func TestPickerErrorIsReported(t *testing.T) {
	f := newFixture(t)
	f.prompter.pickErr = errors.New("portal unavailable")

	f.controller.OpenFile()

	require.Len(t, f.prompter.errs, 1)
	assert.Contains(t, f.prompter.errs[0].Error(), "portal unavailable")
}

func TestCancelledOpenIsNoOp(t *testing.T) {
	f := newFixture(t)

	f.controller.OpenFile()

	assert.Equal(t, 1, f.prompter.opens)
	assert.Empty(t, f.prompter.errs)
	assert.Equal(t, "Ready", f.chrome.status)
}

func TestNewClearsEverything(t *testing.T) {
	f := newFixture(t)
	f.prompter.openPath = f.writeFile(t, "notes.txt", "hello")
	f.controller.OpenFile()

	f.controller.NewFile()

	assert.Empty(t, f.surface.text)
	assert.True(t, f.controller.Document().IsUntitled())
	assert.False(t, f.controller.Document().IsModified())
	assert.Equal(t, "Text Editor - Untitled", f.chrome.title)
	assert.Equal(t, "New file created", f.chrome.status)
	assert.Equal(t, 1, f.watcher.stopped)
}

func TestCancelLeavesStateAndBufferUntouched(t *testing.T) {
	actions := map[string]func(*Controller){
		"new":   (*Controller).NewFile,
		"open":  (*Controller).OpenFile,
		"close": (*Controller).RequestClose,
	}

	for name, action := range actions {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			path := f.writeFile(t, "notes.txt", "hello")
			f.prompter.openPath = path
			f.controller.OpenFile()
			f.surface.typeText(f.controller, " edited")
			f.prompter.choice = SaveCancel

			action(f.controller)

			assert.Equal(t, 1, f.prompter.confirms)
			assert.Equal(t, "hello edited", f.surface.text)
			assert.Equal(t, path, f.controller.Document().Path())
			assert.True(t, f.controller.Document().IsModified())
			assert.Equal(t, "Text Editor - notes.txt*", f.chrome.title)
			assert.Equal(t, "hello", readFile(t, path))
			assert.False(t, f.chrome.closed)
			assert.Equal(t, 1, f.prompter.opens, "no second picker")
		})
	}
}

func TestGuardNoDiscardsChanges(t *testing.T) {
	f := newFixture(t)
	path := f.writeFile(t, "notes.txt", "hello")
	f.prompter.openPath = path
	f.controller.OpenFile()
	f.surface.typeText(f.controller, " edited")
	f.prompter.choice = SaveNo

	f.controller.NewFile()

	assert.Empty(t, f.surface.text)
	assert.Equal(t, "hello", readFile(t, path))
	assert.Equal(t, document.UntitledClean, f.controller.Document().State())
}

func TestGuardYesSavesThenProceeds(t *testing.T) {
	f := newFixture(t)
	path := f.writeFile(t, "notes.txt", "hello")
	f.prompter.openPath = path
	f.controller.OpenFile()
	f.surface.typeText(f.controller, " edited")
	f.prompter.choice = SaveYes

	f.controller.RequestClose()

	assert.Equal(t, "hello edited", readFile(t, path))
	assert.True(t, f.chrome.closed)
}

func TestGuardYesWithCancelledSaveAsAborts(t *testing.T) {
	f := newFixture(t)
	f.surface.typeText(f.controller, "unsaved draft")
	f.prompter.choice = SaveYes

	f.controller.RequestClose()

	assert.Equal(t, 1, f.prompter.saves)
	assert.False(t, f.chrome.closed)
	assert.Equal(t, "unsaved draft", f.surface.text)
	assert.True(t, f.controller.Document().IsModified())
}

func TestCloseCleanDocumentDoesNotAsk(t *testing.T) {
	f := newFixture(t)

	f.controller.RequestClose()

	assert.Zero(t, f.prompter.confirms)
	assert.True(t, f.chrome.closed)
}

func TestSaveThenOpenRoundTrip(t *testing.T) {
	f := newFixture(t)
	text := "line one\r\nline two\n\ttabbed ünïcödé\n"
	f.surface.typeText(f.controller, text)
	path := filepath.Join(f.dir, "round.txt")
	f.prompter.savePath = path
	f.controller.SaveFileAs()

	f.controller.NewFile()
	f.prompter.openPath = path
	f.controller.OpenFile()

	assert.Equal(t, text, f.surface.text)
}

func TestEditingCommandsAreDelegated(t *testing.T) {
	f := newFixture(t)

	f.controller.Undo()
	f.controller.Redo()
	f.controller.Cut()
	f.controller.Copy()
	f.controller.Paste()
	f.controller.SelectAll()

	assert.Equal(t, []string{"undo", "redo", "cut", "copy", "paste", "select-all"}, f.surface.calls)
	assert.False(t, f.controller.Document().IsModified())
}

func TestExternalChangeUpdatesStatus(t *testing.T) {
	f := newFixture(t)
	path := f.writeFile(t, "notes.txt", "hello")
	f.prompter.openPath = path
	f.controller.OpenFile()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	f.controller.ExternalChange(abs)
	assert.Equal(t, "File changed on disk: notes.txt", f.chrome.status)

	f.chrome.status = ""
	f.controller.ExternalChange(filepath.Join(f.dir, "other.txt"))
	assert.Empty(t, f.chrome.status)
}
