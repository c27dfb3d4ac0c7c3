package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"stadium-editor/internal/hull"
)

// PathData flattens a path into a single SVG path description: lines
// become L commands, Beziers C commands, and circular arcs elliptical-arc
// A commands. Angles follow the model's y-up convention; the sweep flag is
// 1 for counterclockwise arcs.
func PathData(p hull.Path) string {
	if p.Empty() {
		return ""
	}

	var sb strings.Builder
	start := p.Segments[0].Start()
	fmt.Fprintf(&sb, "M %s %s", fnum(start.X), fnum(start.Y))

	for _, s := range p.Segments {
		switch seg := s.(type) {
		case hull.Line:
			fmt.Fprintf(&sb, " L %s %s", fnum(seg.To.X), fnum(seg.To.Y))
		case hull.Bezier:
			fmt.Fprintf(&sb, " C %s %s %s %s %s %s",
				fnum(seg.CP1.X), fnum(seg.CP1.Y),
				fnum(seg.CP2.X), fnum(seg.CP2.Y),
				fnum(seg.To.X), fnum(seg.To.Y))
		case hull.Arc:
			writeEllipseArc(&sb, seg.AsEllipse())
		case hull.EllipseArc:
			writeEllipseArc(&sb, seg)
		}
	}
	return sb.String()
}

func writeEllipseArc(sb *strings.Builder, e hull.EllipseArc) {
	largeArc := 0
	if e.Sweep() > math.Pi {
		largeArc = 1
	}
	sweepFlag := 0
	if e.Counterclockwise {
		sweepFlag = 1
	}
	end := e.End()
	fmt.Fprintf(sb, " A %s %s %s %d %d %s %s",
		fnum(e.RadiusX), fnum(e.RadiusY),
		fnum(e.Rotation*180/math.Pi),
		largeArc, sweepFlag,
		fnum(end.X), fnum(end.Y))
}

// WriteSVGDocument writes a complete standalone SVG document for the path,
// with a viewBox derived from the exact path bounds plus a margin.
func WriteSVGDocument(w io.Writer, p hull.Path, strokeWidth float64) error {
	bounds := BoundsOf(p).Grow(strokeWidth * 2)
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds.Width = 1
		bounds.Height = 1
	}

	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">
  <path d="%s" fill="none" stroke="black" stroke-width="%s"/>
</svg>
`,
		fnum(bounds.X), fnum(bounds.Y), fnum(bounds.Width), fnum(bounds.Height),
		PathData(p), fnum(strokeWidth))
	return err
}

// fnum formats a coordinate compactly, trimming trailing zeros.
func fnum(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}
