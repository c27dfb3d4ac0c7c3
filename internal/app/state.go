// Package app provides application lifecycle management, shared state, and
// events.
package app

import (
	"fmt"
	"sync"

	"stadium-editor/internal/hull"
	"stadium-editor/internal/project"
	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

// EventType identifies different application events.
type EventType int

const (
	EventProjectLoaded EventType = iota
	EventProjectSaved
	EventSketchChanged
	EventSelectionChanged
	EventOptionsChanged
	EventMirrorChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the current sketch, its traversal
// order, path options, mirror configuration, and selection. The computed
// outline is cached and recomputed lazily after any change; the geometry
// engine itself is pure.
type State struct {
	mu sync.RWMutex

	// Project
	ProjectPath string
	Modified    bool
	Name        string

	discs    []sketch.Disc
	order    []string
	options  sketch.PathOptions
	mirror   sketch.MirrorConfig
	settings project.Settings

	selected string // selected disc ID, empty for none
	nextSeq  int

	pathDirty bool
	path      hull.Path

	listeners map[EventType][]EventListener
}

// NewState creates a new application state with an empty sketch.
func NewState() *State {
	p := project.New("untitled")
	return &State{
		Name:      p.Name,
		options:   p.Options,
		settings:  p.Settings,
		nextSeq:   1,
		listeners: make(map[EventType][]EventListener),
	}
}

// Reset returns the state to an empty unsaved project. Registered
// listeners are kept.
func (s *State) Reset() {
	p := project.New("untitled")

	s.mu.Lock()
	s.ProjectPath = ""
	s.Modified = false
	s.Name = p.Name
	s.discs = nil
	s.order = nil
	s.options = p.Options
	s.mirror = sketch.MirrorConfig{}
	s.settings = p.Settings
	s.selected = ""
	s.nextSeq = 1
	s.pathDirty = true
	s.mu.Unlock()

	s.Emit(EventProjectLoaded, "")
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the project as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// LoadProject loads a project from the specified path.
func (s *State) LoadProject(path string) error {
	proj, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.Name = proj.Name
	s.discs = proj.Discs
	s.order = proj.Order
	s.options = proj.Options
	s.mirror = proj.Mirror
	s.settings = proj.Settings
	s.selected = ""
	s.nextSeq = len(proj.Discs) + 1
	s.pathDirty = true
	s.mu.Unlock()

	s.Emit(EventProjectLoaded, path)
	return nil
}

// SaveProject saves the project to the specified path.
func (s *State) SaveProject(path string) error {
	s.mu.RLock()
	proj := project.File{
		Version:  1,
		Name:     s.Name,
		Discs:    append([]sketch.Disc(nil), s.discs...),
		Order:    append([]string(nil), s.order...),
		Options:  s.options,
		Mirror:   s.mirror,
		Settings: s.settings,
	}
	s.mu.RUnlock()

	if err := proj.Save(path); err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventProjectSaved, path)
	return nil
}

// AddDisc places a new disc at the given center and appends it to the
// traversal order. Returns the new disc's ID.
func (s *State) AddDisc(center geometry.Point2D, radius float64) string {
	s.mu.Lock()
	d := sketch.NewDisc(s.nextSeq, center, radius)
	s.nextSeq++
	s.discs = append(s.discs, d)
	s.order = append(s.order, d.ID)
	s.selected = d.ID
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventSketchChanged, d.ID)
	s.Emit(EventSelectionChanged, d.ID)
	return d.ID
}

// RemoveDisc deletes a disc. The traversal order keeps any stale reference
// out by construction; the geometry engine drops unknown IDs anyway.
func (s *State) RemoveDisc(id string) {
	s.mu.Lock()
	for i, d := range s.discs {
		if d.ID == id {
			s.discs = append(s.discs[:i], s.discs[i+1:]...)
			break
		}
	}
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == id {
		s.selected = ""
	}
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventSketchChanged, id)
}

// MoveDisc translates a disc by the given delta.
func (s *State) MoveDisc(id string, delta geometry.Point2D) {
	s.mu.Lock()
	for i := range s.discs {
		if s.discs[i].ID == id {
			s.discs[i].Center = s.discs[i].Center.Add(delta)
			break
		}
	}
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventSketchChanged, id)
}

// SetRadius changes a disc's radius. Non-positive radii are ignored.
func (s *State) SetRadius(id string, radius float64) {
	if radius <= 0 {
		return
	}
	s.mu.Lock()
	for i := range s.discs {
		if s.discs[i].ID == id {
			s.discs[i].Radius = radius
			break
		}
	}
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventSketchChanged, id)
}

// SetMirrored toggles mirror duplication for a disc.
func (s *State) SetMirrored(id string, mirrored bool) {
	s.mu.Lock()
	for i := range s.discs {
		if s.discs[i].ID == id {
			s.discs[i].Mirrored = mirrored
			break
		}
	}
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventSketchChanged, id)
}

// SetOptions replaces the path options.
func (s *State) SetOptions(opts sketch.PathOptions) {
	s.mu.Lock()
	s.options = opts
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventOptionsChanged, opts)
}

// SetMirror replaces the mirror configuration.
func (s *State) SetMirror(cfg sketch.MirrorConfig) {
	s.mu.Lock()
	s.mirror = cfg
	s.pathDirty = true
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventMirrorChanged, cfg)
}

// Select marks a disc as selected (empty ID clears the selection).
func (s *State) Select(id string) {
	s.mu.Lock()
	changed := s.selected != id
	s.selected = id
	s.mu.Unlock()

	if changed {
		s.Emit(EventSelectionChanged, id)
	}
}

// Selected returns the selected disc's ID, or "".
func (s *State) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Discs returns a snapshot of the current discs.
func (s *State) Discs() []sketch.Disc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]sketch.Disc(nil), s.discs...)
}

// Disc returns a disc by ID.
func (s *State) Disc(id string) (sketch.Disc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.discs {
		if d.ID == id {
			return d, true
		}
	}
	return sketch.Disc{}, false
}

// Order returns a snapshot of the traversal order.
func (s *State) Order() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Options returns the current path options.
func (s *State) Options() sketch.PathOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// Mirror returns the current mirror configuration.
func (s *State) Mirror() sketch.MirrorConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mirror
}

// Settings returns the project settings.
func (s *State) Settings() project.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the project settings. Settings do not affect the
// computed outline, so the path cache stays valid.
func (s *State) SetSettings(settings project.Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.SetModified(true)
}

// Path returns the computed outline, recomputing it only after a change.
func (s *State) Path() hull.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pathDirty {
		s.path = hull.ComputeTangentHull(s.discs, s.order, s.options, s.mirror)
		s.pathDirty = false
	}
	return s.path
}
