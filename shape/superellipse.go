package shape

import (
	"math"

	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// superellipseStep is the fixed angular sampling step. 5 degree steps give
// 72 boundary points, plenty below manufacturing tolerance at tray scale.
const superellipseStep = 5.0

// SuperellipsePoints samples the boundary of an Lp-norm ellipse with
// semi-axes a, b and exponent n at fixed 5 degree steps. n=2 is a true
// ellipse, larger n tends towards a rounded rectangle.
func SuperellipsePoints(a, b, n float64) []r2.Vec {
	if a <= 0 || b <= 0 {
		panic(errMsg("superellipse semi-axes must be positive, got %g, %g", a, b))
	}
	if n <= 0 {
		panic(errMsg("superellipse exponent must be positive, got %g", n))
	}
	steps := int(360 / superellipseStep)
	pts := make([]r2.Vec, steps)
	for i := 0; i < steps; i++ {
		theta := sdfx.DtoR(float64(i) * superellipseStep)
		pts[i] = superellipsePoint(a, b, n, theta)
	}
	return pts
}

func superellipsePoint(a, b, n, theta float64) r2.Vec {
	c, s := math.Cos(theta), math.Sin(theta)
	e := 2 / n
	return r2.Vec{
		X: a * math.Pow(math.Abs(c), e) * sign(c),
		Y: b * math.Pow(math.Abs(s), e) * sign(s),
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Superellipse returns the SDF2 of the sampled superellipse polygon.
func Superellipse(a, b, n float64) sdf.SDF2 {
	return must2.Polygon(SuperellipsePoints(a, b, n))
}

// PhoneOutlinePoints returns the closed boundary of a phone silhouette:
// the convex outline through the four quadrant arcs of corner superellipses
// of radius curve placed at (±(length/2-curve), ±(width/2-curve)). Each
// corner patch keeps only the arc that belongs to its quadrant, so the
// stitched polygon is the convex hull of the patches.
func PhoneOutlinePoints(length, width, curve, smooth float64) []r2.Vec {
	if width <= 0 || length < width {
		panic(errMsg("phone outline needs length >= width > 0, got %gx%g", length, width))
	}
	if curve <= 0 || curve > width/2 {
		panic(errMsg("corner curve %g outside (0, %g]", curve, width/2))
	}
	if smooth <= 0 {
		panic(errMsg("corner smoothness must be positive, got %g", smooth))
	}
	inset := r2.Vec{X: length/2 - curve, Y: width/2 - curve}
	// Quadrant start angles, counter-clockwise from +X.
	quadrants := []struct {
		start  float64
		corner r2.Vec
	}{
		{0, r2.Vec{X: inset.X, Y: inset.Y}},
		{90, r2.Vec{X: -inset.X, Y: inset.Y}},
		{180, r2.Vec{X: -inset.X, Y: -inset.Y}},
		{270, r2.Vec{X: inset.X, Y: -inset.Y}},
	}
	arcSteps := int(90 / superellipseStep) // closing vertex of each arc included
	pts := make([]r2.Vec, 0, 4*(arcSteps+1))
	for _, q := range quadrants {
		for i := 0; i <= arcSteps; i++ {
			theta := sdfx.DtoR(q.start + float64(i)*superellipseStep)
			p := superellipsePoint(curve, curve, smooth, theta)
			pts = append(pts, r2.Add(q.corner, p))
		}
	}
	return pts
}

// PhoneOutline returns the SDF2 of the phone silhouette.
func PhoneOutline(length, width, curve, smooth float64) sdf.SDF2 {
	return must2.Polygon(PhoneOutlinePoints(length, width, curve, smooth))
}
