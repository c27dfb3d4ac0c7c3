// Package fit provides least-squares fitting for the place-through-points
// tool: the user clicks sample points and gets the best-fitting disc.
package fit

import (
	"fmt"
	"math"

	"stadium-editor/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Circle fits a circle to three or more points by linear least squares
// (the algebraic Kasa formulation: x^2 + y^2 + a*x + b*y + c = 0).
// Returns an error for fewer than three points or a degenerate (collinear)
// sample set.
func Circle(points []geometry.Point2D) (geometry.Circle, error) {
	n := len(points)
	if n < 3 {
		return geometry.Circle{}, fmt.Errorf("need at least 3 points, got %d", n)
	}

	// Build the overdetermined system [x y 1] * [a b c]^T = -(x^2 + y^2).
	A := mat.NewDense(n, 3, nil)
	B := mat.NewVecDense(n, nil)
	for i, p := range points {
		A.Set(i, 0, p.X)
		A.Set(i, 1, p.Y)
		A.Set(i, 2, 1)
		B.SetVec(i, -(p.X*p.X + p.Y*p.Y))
	}

	// Solve using QR decomposition.
	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return geometry.Circle{}, fmt.Errorf("solve circle system: %w", err)
	}

	a := params.AtVec(0)
	b := params.AtVec(1)
	c := params.AtVec(2)

	cx := -a / 2
	cy := -b / 2
	r2 := cx*cx + cy*cy - c
	if math.IsNaN(r2) || math.IsInf(r2, 0) || r2 <= 0 {
		return geometry.Circle{}, fmt.Errorf("points do not determine a circle")
	}

	return geometry.Circle{
		Center: geometry.Point2D{X: cx, Y: cy},
		Radius: math.Sqrt(r2),
	}, nil
}
