// Package symmetry implements the N-plane radial mirror group: orbit
// expansion of mirrored discs and the snap axes it induces for dragging.
package symmetry

import (
	"fmt"
	"math"
	"sort"

	"stadium-editor/internal/sketch"
	"stadium-editor/pkg/geometry"
)

// Expand replaces every mirrored disc with its full orbit under the
// dihedral group defined by cfg (order 2N for N planes). Unmirrored discs
// and a disabled config pass through unchanged. Images are spliced into the
// sequence adjacent to their source so the traversal stays simple.
func Expand(discs []sketch.Disc, cfg sketch.MirrorConfig) []sketch.Disc {
	if !cfg.Enabled() {
		return discs
	}

	out := make([]sketch.Disc, 0, len(discs))
	for _, d := range discs {
		if !d.Mirrored {
			out = append(out, d)
			continue
		}
		out = append(out, Orbit(d, cfg)...)
	}
	return out
}

// Orbit returns the 2N orbit members of a disc under the mirror group,
// original first, remaining images sorted by polar angle walking from the
// source around the origin. Radius is invariant under the group; every
// member carries the source disc's ID and its orbit index.
func Orbit(d sketch.Disc, cfg sketch.MirrorConfig) []sketch.Disc {
	n := cfg.PlaneCount
	if n <= 0 {
		return []sketch.Disc{d}
	}

	members := make([]sketch.Disc, 0, 2*n)

	original := d
	original.Source = d.ID
	original.Plane = 0
	members = append(members, original)

	// The group generated by N mirror lines spaced pi/N apart contains N
	// rotations (by 2*pi*k/N) and N reflections (across each plane line).
	for k := 1; k < n; k++ {
		c := d.Center.Rotate(2 * math.Pi * float64(k) / float64(n))
		members = append(members, image(d, c, k))
	}
	for k := 0; k < n; k++ {
		plane := cfg.StartAngle + float64(k)*math.Pi/float64(n)
		c := d.Center.ReflectAcross(plane)
		members = append(members, image(d, c, n+k))
	}

	// Keep the original first and walk the remaining images around the
	// origin starting from the source's own direction, so consecutive
	// orbit members are angular neighbors.
	base := d.Center.Angle()
	rest := members[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		ai := geometry.NormalizeAngle(rest[i].Center.Angle() - base)
		aj := geometry.NormalizeAngle(rest[j].Center.Angle() - base)
		return ai < aj
	})

	return members
}

func image(src sketch.Disc, center geometry.Point2D, index int) sketch.Disc {
	return sketch.Disc{
		ID:     fmt.Sprintf("%s@%d", src.ID, index),
		Center: center,
		Radius: src.Radius,
		Source: src.ID,
		Plane:  index,
	}
}
