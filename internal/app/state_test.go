package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

func TestAddRemoveDisc(t *testing.T) {
	s := NewState()

	id := s.AddDisc(geometry.Point2D{X: 1, Y: 2}, 5)
	assert.Equal(t, "disc-001", id)
	assert.Equal(t, id, s.Selected())
	assert.Equal(t, []string{id}, s.Order())
	assert.True(t, s.Modified)

	d, ok := s.Disc(id)
	require.True(t, ok)
	assert.Equal(t, geometry.Point2D{X: 1, Y: 2}, d.Center)
	assert.Equal(t, 5.0, d.Radius)

	s.RemoveDisc(id)
	_, ok = s.Disc(id)
	assert.False(t, ok)
	assert.Empty(t, s.Order())
	assert.Empty(t, s.Selected())
}

func TestDiscIDsDoNotRepeatAfterRemove(t *testing.T) {
	s := NewState()

	first := s.AddDisc(geometry.Point2D{}, 1)
	s.RemoveDisc(first)
	second := s.AddDisc(geometry.Point2D{}, 1)

	assert.NotEqual(t, first, second)
}

func TestMoveAndSetRadius(t *testing.T) {
	s := NewState()
	id := s.AddDisc(geometry.Point2D{X: 0, Y: 0}, 2)

	s.MoveDisc(id, geometry.Point2D{X: 3, Y: -1})
	d, _ := s.Disc(id)
	assert.Equal(t, geometry.Point2D{X: 3, Y: -1}, d.Center)

	s.SetRadius(id, 7)
	d, _ = s.Disc(id)
	assert.Equal(t, 7.0, d.Radius)

	// Non-positive radii are ignored.
	s.SetRadius(id, -1)
	d, _ = s.Disc(id)
	assert.Equal(t, 7.0, d.Radius)
}

func TestPathCache(t *testing.T) {
	s := NewState()
	assert.True(t, s.Path().Empty())

	a := s.AddDisc(geometry.Point2D{X: 0, Y: 0}, 2)
	s.AddDisc(geometry.Point2D{X: 10, Y: 0}, 2)

	p := s.Path()
	require.Len(t, p.Segments, 4)

	// Unchanged state returns the identical cached path.
	again := s.Path()
	assert.Equal(t, len(p.Segments), len(again.Segments))

	// Mutation invalidates the cache.
	s.MoveDisc(a, geometry.Point2D{X: 0, Y: 3})
	moved := s.Path()
	require.Len(t, moved.Segments, 4)
	assert.NotEqual(t, p.Segments[0].Start(), moved.Segments[0].Start())
}

func TestEvents(t *testing.T) {
	s := NewState()

	var sketchEvents, selectionEvents int
	s.On(EventSketchChanged, func(interface{}) { sketchEvents++ })
	s.On(EventSelectionChanged, func(interface{}) { selectionEvents++ })

	id := s.AddDisc(geometry.Point2D{}, 1)
	assert.Equal(t, 1, sketchEvents)
	assert.Equal(t, 1, selectionEvents)

	s.MoveDisc(id, geometry.Point2D{X: 1, Y: 0})
	assert.Equal(t, 2, sketchEvents)

	// Re-selecting the same disc does not fire.
	s.Select(id)
	assert.Equal(t, 1, selectionEvents)
	s.Select("")
	assert.Equal(t, 2, selectionEvents)
}

func TestOptionsAndMirror(t *testing.T) {
	s := NewState()
	s.AddDisc(geometry.Point2D{X: 0, Y: 0}, 2)
	s.AddDisc(geometry.Point2D{X: 10, Y: 0}, 2)

	closed := s.Path()
	require.Len(t, closed.Segments, 4)

	s.SetOptions(sketch.PathOptions{Closed: false})
	open := s.Path()
	assert.Len(t, open.Segments, 1)

	s.SetMirror(sketch.MirrorConfig{PlaneCount: 2})
	assert.Equal(t, 2, s.Mirror().PlaneCount)
}

func TestSaveLoadProject(t *testing.T) {
	s := NewState()
	s.AddDisc(geometry.Point2D{X: 0, Y: 0}, 2)
	s.AddDisc(geometry.Point2D{X: 10, Y: 0}, 2)
	s.SetOptions(sketch.PathOptions{Closed: true, GlobalStretch: 0.1})

	path := filepath.Join(t.TempDir(), "proj.stadium")
	require.NoError(t, s.SaveProject(path))
	assert.False(t, s.Modified)
	assert.Equal(t, path, s.ProjectPath)

	loaded := NewState()
	require.NoError(t, loaded.LoadProject(path))
	assert.Equal(t, s.Order(), loaded.Order())
	assert.Equal(t, s.Options(), loaded.Options())
	assert.Len(t, loaded.Discs(), 2)
	assert.Len(t, loaded.Path().Segments, 4)

	assert.Error(t, loaded.LoadProject(filepath.Join(t.TempDir(), "missing.stadium")))
}

func TestReset(t *testing.T) {
	s := NewState()
	s.AddDisc(geometry.Point2D{X: 1, Y: 1}, 2)
	s.SetMirror(sketch.MirrorConfig{PlaneCount: 4})

	s.Reset()
	assert.Empty(t, s.Discs())
	assert.Empty(t, s.Order())
	assert.False(t, s.Modified)
	assert.Equal(t, 0, s.Mirror().PlaneCount)
	assert.True(t, s.Path().Empty())

	// IDs restart after a reset.
	assert.Equal(t, "disc-001", s.AddDisc(geometry.Point2D{}, 1))
}

func TestSetMirrored(t *testing.T) {
	s := NewState()
	id := s.AddDisc(geometry.Point2D{X: 5, Y: 1}, 2)

	s.SetMirrored(id, true)
	d, _ := s.Disc(id)
	assert.True(t, d.Mirrored)
}
