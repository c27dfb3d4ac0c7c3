// Package hull turns an ordered sequence of discs into the smooth outline
// that threads them: straight (or bowed) external tangents joined by arcs
// around each disc. The computation is pure; identical inputs always yield
// an identical path.
package hull

import (
	"math"

	"stadium-editor/internal/sketch"
	"stadium-editor/internal/symmetry"
	"stadium-editor/pkg/geometry"
)

// minSweep is the angle below which a connecting arc is dropped as
// zero-length. Sweeps within the same distance of a full turn are rounding
// artifacts of coincident contact angles and are dropped too.
const minSweep = 1e-9

// ComputeTangentHull computes the outline for the discs referenced by
// order. Mirrored discs are expanded first; order IDs with no matching disc
// are dropped. Fewer than two usable discs produce an empty path, which is
// the normal "nothing to draw" result.
func ComputeTangentHull(discs []sketch.Disc, order []string, opts sketch.PathOptions, mirror sketch.MirrorConfig) Path {
	seq := symmetry.Expand(sketch.Ordered(discs, order), mirror)
	seq = dropContained(seq, opts.Closed)
	if len(seq) < 2 {
		return Path{}
	}

	// Handedness is fixed once for the whole path; every arc sweeps in
	// this direction.
	ccw := handedness(seq)

	n := len(seq)
	pairCount := n - 1
	if opts.Closed {
		pairCount = n
	}

	links := make([]link, 0, pairCount)
	for i := 0; i < pairCount; i++ {
		a := seq[i].Circle()
		b := seq[(i+1)%n].Circle()
		t, ok := OuterTangent(a, b, ccw)
		if !ok {
			// Contained pairs were removed above; a pair failing here
			// means the sequence cannot form a hull at all.
			return Path{}
		}
		links = append(links, makeLink(a, b, t, opts.GlobalStretch, ccw))
	}

	var segs []Segment

	if opts.Closed {
		for i := 0; i < n; i++ {
			segs = append(segs, links[i].seg)
			next := (i + 1) % n
			segs = appendArc(segs, seq[next].Circle(), links[i].endAngle, links[next].startAngle, ccw)
		}
		return Path{Segments: segs}
	}

	if opts.UseStartPoint {
		// Wrap around the back of the first disc: start at the contact
		// point of the opposite-side tangent.
		if back, ok := OuterTangent(seq[0].Circle(), seq[1].Circle(), !ccw); ok {
			segs = appendArc(segs, seq[0].Circle(), back.Angle, links[0].startAngle, ccw)
		}
	}
	segs = append(segs, links[0].seg)
	for i := 1; i < pairCount; i++ {
		segs = appendArc(segs, seq[i].Circle(), links[i-1].endAngle, links[i].startAngle, ccw)
		segs = append(segs, links[i].seg)
	}
	if opts.UseEndPoint {
		if back, ok := OuterTangent(seq[n-2].Circle(), seq[n-1].Circle(), !ccw); ok {
			segs = appendArc(segs, seq[n-1].Circle(), links[pairCount-1].endAngle, back.Angle, ccw)
		}
	}

	return Path{Segments: segs}
}

// link is the tangent segment between one adjacent disc pair plus the
// contact angles the bracketing arcs attach to.
type link struct {
	seg        Segment
	startAngle float64 // contact angle on the first disc
	endAngle   float64 // contact angle on the second disc
}

// makeLink builds the pair's segment. With no stretch this is the tangent
// line itself. With stretch, each contact point rolls around its disc by
// the stretch angle (receding at the start, advancing at the end, the way
// a belt lifts off a pulley) and a cubic bows along the pair's shared
// normal; its end tangents equal the circle tangents at the rolled points,
// so first-derivative continuity with the bracketing arcs is exact.
func makeLink(a, b geometry.Circle, t Tangent, stretch float64, ccw bool) link {
	if stretch == 0 {
		return link{seg: Line{From: t.From, To: t.To}, startAngle: t.Angle, endAngle: t.Angle}
	}

	dir := -1.0
	if ccw {
		dir = 1.0
	}

	sa := t.Angle - dir*stretch
	ea := t.Angle + dir*stretch
	p1 := a.PointAt(sa)
	p2 := b.PointAt(ea)
	handle := p1.Distance(p2) / 3

	// Traversal direction on a circle is the radius direction turned a
	// quarter turn toward the sweep.
	t1 := geometry.FromPolar(sa+dir*math.Pi/2, 1)
	t2 := geometry.FromPolar(ea+dir*math.Pi/2, 1)

	return link{
		seg: Bezier{
			From: p1,
			CP1:  p1.Add(t1.Scale(handle)),
			CP2:  p2.Sub(t2.Scale(handle)),
			To:   p2,
		},
		startAngle: sa,
		endAngle:   ea,
	}
}

// appendArc adds the connecting arc on a disc between two contact angles,
// skipping arcs whose sweep is indistinguishable from zero.
func appendArc(segs []Segment, c geometry.Circle, from, to float64, ccw bool) []Segment {
	arc := Arc{
		Center:           c.Center,
		Radius:           c.Radius,
		StartAngle:       from,
		EndAngle:         to,
		Counterclockwise: ccw,
	}
	sweep := arc.Sweep()
	if sweep < minSweep || sweep > 2*math.Pi-minSweep {
		return segs
	}
	return append(segs, arc)
}

// handedness derives the traversal direction from the signed area of the
// ordered centers. Collinear or two-disc sequences have zero area and
// default to clockwise.
func handedness(seq []sketch.Disc) bool {
	centers := make([]geometry.Point2D, len(seq))
	for i, d := range seq {
		centers[i] = d.Center
	}
	return geometry.SignedArea(centers) > 0
}

// dropContained removes discs fully contained by a traversal neighbor
// until no adjacent pair is degenerate. The contained disc contributes no
// tangent segment; the hull chains through via its neighbors.
func dropContained(seq []sketch.Disc, closed bool) []sketch.Disc {
	for len(seq) >= 2 {
		n := len(seq)
		limit := n - 1
		if closed {
			limit = n
		}

		removed := -1
		for i := 0; i < limit; i++ {
			j := (i + 1) % n
			a, b := seq[i], seq[j]
			if a.Center.Distance(b.Center) > math.Abs(a.Radius-b.Radius) {
				continue
			}
			if a.Radius < b.Radius {
				removed = i
			} else {
				removed = j
			}
			break
		}
		if removed < 0 {
			break
		}
		seq = append(seq[:removed:removed], seq[removed+1:]...)
	}
	return seq
}
