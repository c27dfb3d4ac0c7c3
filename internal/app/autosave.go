package app

import (
	"log"
	"time"
)

// AutoSaver periodically writes the project back to disk while it has
// unsaved changes. Projects that have never been saved are left alone.
type AutoSaver struct {
	state    *State
	interval time.Duration
	stopCh   chan struct{}
	running  bool
}

// NewAutoSaver creates an auto saver for the given state.
func NewAutoSaver(state *State, interval time.Duration) *AutoSaver {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &AutoSaver{
		state:    state,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background save loop.
func (a *AutoSaver) Start() {
	if a.running {
		return
	}
	a.running = true

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				a.saveIfModified()
			case <-a.stopCh:
				return
			}
		}
	}()
}

// Stop stops the background save loop.
func (a *AutoSaver) Stop() {
	if !a.running {
		return
	}
	a.running = false
	close(a.stopCh)
}

func (a *AutoSaver) saveIfModified() {
	a.state.mu.RLock()
	path := a.state.ProjectPath
	modified := a.state.Modified
	a.state.mu.RUnlock()

	if path == "" || !modified {
		return
	}
	if err := a.state.SaveProject(path); err != nil {
		log.Printf("Auto save failed: %v", err)
		return
	}
	log.Printf("Auto saved project to %s", path)
}
