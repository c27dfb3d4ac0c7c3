// Package sketch defines the entities a stadium sketch is made of: the
// user-placed discs, the traversal order, the path options, and the mirror
// symmetry configuration.
package sketch

import (
	"fmt"

	"stadium-editor/pkg/geometry"
)

// Disc is a user-placed circle the outline threads through. Identity is
// owned by the document; the geometry engine only reads it.
type Disc struct {
	ID       string           `json:"id"`
	Center   geometry.Point2D `json:"center"`
	Radius   float64          `json:"radius"`
	Mirrored bool             `json:"mirrored,omitempty"`

	// Source and Plane are set on discs produced by mirror expansion:
	// Source is the originating disc's ID and Plane the orbit index.
	// User-placed discs leave both zero.
	Source string `json:"-"`
	Plane  int    `json:"-"`
}

// NewDisc creates a disc with a sequence-numbered ID.
func NewDisc(seq int, center geometry.Point2D, radius float64) Disc {
	return Disc{
		ID:     fmt.Sprintf("disc-%03d", seq),
		Center: center,
		Radius: radius,
	}
}

// Circle returns the disc's plain geometric circle.
func (d Disc) Circle() geometry.Circle {
	return geometry.Circle{Center: d.Center, Radius: d.Radius}
}

// IsImage reports whether the disc is a mirror image rather than a
// user-placed disc.
func (d Disc) IsImage() bool {
	return d.Source != "" && d.Source != d.ID
}

// MirrorConfig describes an N-plane radial mirror symmetry about the origin.
// PlaneCount 0 means no symmetry.
type MirrorConfig struct {
	PlaneCount int     `json:"plane_count"`
	StartAngle float64 `json:"start_angle"`
}

// Enabled reports whether the configuration defines any mirror planes.
func (m MirrorConfig) Enabled() bool {
	return m.PlaneCount > 0
}

// PathOptions selects the outline topology and shaping.
// UseStartPoint and UseEndPoint only apply when Closed is false.
type PathOptions struct {
	Closed        bool    `json:"closed"`
	UseStartPoint bool    `json:"use_start_point,omitempty"`
	UseEndPoint   bool    `json:"use_end_point,omitempty"`
	GlobalStretch float64 `json:"global_stretch,omitempty"`
}

// ByID builds a lookup map from disc ID to disc.
func ByID(discs []Disc) map[string]Disc {
	m := make(map[string]Disc, len(discs))
	for _, d := range discs {
		m[d.ID] = d
	}
	return m
}

// Ordered resolves an ID order against the available discs. IDs with no
// matching disc are silently dropped; they are stale references, not errors.
func Ordered(discs []Disc, order []string) []Disc {
	byID := ByID(discs)
	out := make([]Disc, 0, len(order))
	for _, id := range order {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}
