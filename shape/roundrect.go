package shape

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// RoundRect returns a rounded rectangle of the given size. The corner
// radius is clamped to [0, min(w,h)/2] so the result is never
// self-intersecting regardless of caller input.
func RoundRect(size r2.Vec, radius float64) sdf.SDF2 {
	if size.X <= 0 || size.Y <= 0 {
		panic(errMsg("round rect size must be positive, got %gx%g", size.X, size.Y))
	}
	return must2.Box(size, ClampRadius(size, radius))
}

// ClampRadius returns the effective corner radius used by RoundRect:
// max(0, min(radius, min(w,h)/2)).
func ClampRadius(size r2.Vec, radius float64) float64 {
	limit := math.Min(size.X, size.Y) / 2
	return math.Max(0, math.Min(radius, limit))
}
