package shape

import (
	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Wedge returns a right-triangle prism: legs length (X) and height (Z),
// hypotenuse sloping down from the -X top edge to the +X bottom edge,
// extruded along Y over width. The solid is centered on the origin.
func Wedge(length, width, height float64) sdf.SDF3 {
	if length <= 0 || width <= 0 || height <= 0 {
		panic(errMsg("wedge dimensions must be positive, got %g, %g, %g", length, width, height))
	}
	tri := must2.Polygon([]r2.Vec{
		{X: -length / 2, Y: -height / 2},
		{X: length / 2, Y: -height / 2},
		{X: -length / 2, Y: height / 2},
	})
	s := sdf.Extrude3D(tri, width)
	// stand the profile up in the XZ plane, extrusion along Y
	return sdf.Transform3D(s, sdf.RotateX(sdfx.DtoR(90)))
}
