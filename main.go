// Package main provides the entry point for the Stadium Editor application.
package main

import (
	"log"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"stadium-editor/internal/app"
	"stadium-editor/internal/version"
	"stadium-editor/ui/mainwindow"
	"stadium-editor/ui/prefs"
)

const appTitle = "Stadium Editor"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("stadium-editor")

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Handle command line arguments
	if len(os.Args) > 1 {
		projectPath := os.Args[1]
		if err := appState.LoadProject(projectPath); err != nil {
			log.Printf("Failed to load project %s: %v", projectPath, err)
		}
	}

	saver := app.NewAutoSaver(appState, 2*time.Minute)
	saver.Start()
	defer saver.Stop()

	win.ShowAndRun()

	if err := appPrefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
