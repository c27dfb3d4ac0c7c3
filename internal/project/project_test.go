package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

func TestNewDefaults(t *testing.T) {
	p := New("test")

	assert.Equal(t, 1, p.Version)
	assert.Equal(t, "test", p.Name)
	assert.True(t, p.Options.Closed)
	assert.True(t, p.Settings.SnapToAxes)
	assert.Equal(t, 20.0, p.Settings.DefaultRadius)
	assert.False(t, p.Created.IsZero())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := New("roundtrip")
	p.Discs = []sketch.Disc{
		sketch.NewDisc(1, geometry.Point2D{X: 1.5, Y: -2.25}, 3),
		sketch.NewDisc(2, geometry.Point2D{X: 10, Y: 0}, 2),
	}
	p.Discs[1].Mirrored = true
	p.Order = []string{"disc-001", "disc-002"}
	p.Options = sketch.PathOptions{Closed: false, UseStartPoint: true, GlobalStretch: 0.2}
	p.Mirror = sketch.MirrorConfig{PlaneCount: 3, StartAngle: 0.5}

	path := filepath.Join(t.TempDir(), "test.stadium")
	require.NoError(t, p.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.Discs, loaded.Discs)
	assert.Equal(t, p.Order, loaded.Order)
	assert.Equal(t, p.Options, loaded.Options)
	assert.Equal(t, p.Mirror, loaded.Mirror)
	assert.Equal(t, p.Settings, loaded.Settings)
}

func TestSaveUpdatesModified(t *testing.T) {
	p := New("stamp")
	before := p.Modified

	path := filepath.Join(t.TempDir(), "test.stadium")
	require.NoError(t, p.Save(path))
	assert.False(t, p.Modified.Before(before))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.stadium"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.stadium")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse project")
}
