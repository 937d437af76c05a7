package app

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"textpad/internal/debug"
	"textpad/internal/document"
	"textpad/internal/gui"
	"textpad/internal/storage"
	"textpad/internal/watch"
)

const (
	AppID        = "com.textpad.editor"
	AppVersion   = "1.0.0"
	WindowWidth  = 800
	WindowHeight = 600
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *gui.View
	controller *gui.Controller
	watcher    *watch.Watcher
	debugCoord debug.Coordinator
	lifecycle  *Lifecycle
	stopped    atomic.Bool
}

func NewApplication(settings Settings) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(document.AppTitle)

	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	debugCoord := debug.NewCoordinator(settings.Debug)
	logger := debugCoord.Logger()

	logger.Info("Application", "starting application", map[string]interface{}{
		"version":        AppVersion,
		"window_width":   WindowWidth,
		"window_height":  WindowHeight,
		"native_dialogs": settings.NativeDialogs,
		"debug_enabled":  settings.Debug.EnableLogging,
	})

	store := storage.NewStore(logger, debugCoord.TimingTracker(), debugCoord.FileTracker())
	controller := gui.NewController(store, debugCoord)

	watcher, err := watch.New(logger, func(path string) {
		fyne.Do(func() { controller.ExternalChange(path) })
	})
	if err != nil {
		// The editor works without change notices.
		logger.Warning("Application", "file watching disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		controller.SetWatcher(watcher)
	}

	if settings.NativeDialogs {
		controller.SetPrompter(gui.NewNativePrompter(window, logger))
	} else {
		controller.SetPrompter(gui.NewFynePrompter(window, logger))
	}

	view := gui.NewView(window, fyneApp.Clipboard())
	view.SetController(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		watcher:    watcher,
		debugCoord: debugCoord,
		lifecycle:  NewLifecycle(watcher, debugCoord),
	}

	logger.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until the fyne event loop ends.
func (a *Application) Run() error {
	logger := a.debugCoord.Logger()

	a.window.SetOnClosed(func() {
		logger.Info("Application", "window closed", map[string]interface{}{
			"state": a.controller.Document().State().String(),
		})
	})

	a.view.Show()

	logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.stopped.Store(true)

	return nil
}

// Quit stops the event loop from any goroutine without running the save-guard.
func (a *Application) Quit() {
	if a.stopped.Load() {
		return
	}
	fyne.Do(a.fyneApp.Quit)
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

func (a *Application) Logger() debug.Logger {
	return a.debugCoord.Logger()
}
