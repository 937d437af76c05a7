package main

import (
	"log"

	"textpad/internal/app"
	"textpad/internal/shutdown"
)

func main() {
	application, err := app.NewApplication(app.LoadSettings())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(application.Logger())
	shutdownManager.Register("lifecycle", application.Lifecycle())
	shutdownManager.Register("fyne", shutdown.Func(application.Quit))
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	shutdownManager.Shutdown()
}
