// Package project provides project file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stadium-editor/internal/sketch"
)

// File represents a stadium editor project file (.stadium).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	// The sketch itself
	Discs   []sketch.Disc       `json:"discs"`
	Order   []string            `json:"order"`
	Options sketch.PathOptions  `json:"options"`
	Mirror  sketch.MirrorConfig `json:"mirror"`

	// User settings
	Settings Settings `json:"settings,omitempty"`
}

// Settings holds user preferences for the project.
type Settings struct {
	SnapToAxes    bool    `json:"snap_to_axes"`
	DefaultRadius float64 `json:"default_radius,omitempty"`
	StrokeWidth   float64 `json:"stroke_width,omitempty"`
}

// New creates a new project file with default settings.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
		Options:  sketch.PathOptions{Closed: true},
		Settings: Settings{
			SnapToAxes:    true,
			DefaultRadius: 20,
			StrokeWidth:   2,
		},
	}
}

// Load loads a project from a .stadium file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}

	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
