package tray

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gridtray/params"
	"github.com/soypat/gridtray/shape"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Solid returns the tray body. The solid spans the phone footprint centered
// on the XY origin with its floor at z=0 and its support surface at
// layout.Height.
func Solid(phone params.PhoneSpec, charger params.ChargerSpec, lay Layout) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return solid(phone, charger, lay), err
}

// solid composes the body from axis-aligned boxes and one wedge, laid out
// left to right along the long axis: ramp, filler beneath it, bottom pad,
// charger bay, top pad, camera relief, plus a bottom fill under everything.
// Every box is inflated by Overlap so shared faces fuse watertight.
func solid(phone params.PhoneSpec, charger params.ChargerSpec, lay Layout) sdf.SDF3 {
	var (
		l = phone.Length
		w = phone.Width
		h = lay.Height
		d = charger.Diameter
	)

	// ramp sloping down from the bottom edge towards the bay
	wedge := shape.Wedge(lay.WedgeLen+Overlap, w, lay.WedgeHeight)
	wedge = sdf.Transform3D(wedge, sdf.Translate3D(r3.Vec{
		X: -l/2 + lay.WedgeLen/2,
		Z: h - lay.WedgeHeight/2,
	}))

	parts := []sdf.SDF3{wedge}

	// no hollow cavity may remain beneath the ramp
	if fill := h - lay.WedgeHeight; fill > 0 {
		parts = append(parts, boxAt(
			r3.Vec{X: lay.WedgeLen, Y: w, Z: fill},
			r3.Vec{X: -l/2 + lay.WedgeLen/2, Z: fill / 2},
		))
	}

	// bottom padding between ramp and bay
	if lay.BottomPad > 0 {
		parts = append(parts, boxAt(
			r3.Vec{X: lay.BottomPad / 2, Y: w, Z: h},
			r3.Vec{X: -d/2 - lay.BottomPad/4, Z: h / 2},
		))
	}

	// charger bay segment, full height; the puck cavity is carved out of it
	// later by the cutout solid
	parts = append(parts, boxAt(
		r3.Vec{X: d, Y: w, Z: h},
		r3.Vec{Z: h / 2},
	))

	// top padding between bay and camera relief
	if lay.TopPad > 0 {
		parts = append(parts, boxAt(
			r3.Vec{X: lay.TopPad / 2, Y: w, Z: h},
			r3.Vec{X: d/2 + lay.TopPad/4, Z: h / 2},
		))
	}

	// camera-bump relief: shorter, bottom aligned with the tray floor
	parts = append(parts, boxAt(
		r3.Vec{X: lay.CameraLen, Y: w, Z: lay.CameraHeight},
		r3.Vec{X: l/2 - lay.CameraLen/2, Z: lay.CameraHeight / 2},
	))

	// bottom fill across the whole footprint so nothing below the bay floor
	// is left hollow
	if fill := h - charger.Depth - FitClearance; fill > 0 {
		parts = append(parts, boxAt(
			r3.Vec{X: l, Y: w, Z: fill},
			r3.Vec{Z: fill / 2},
		))
	}

	return sdf.Union3D(parts...)
}

// boxAt returns an Overlap-inflated box of the given size centered at c.
func boxAt(size, c r3.Vec) sdf.SDF3 {
	size = r3.Add(size, r3.Vec{X: Overlap, Y: Overlap, Z: Overlap})
	b := must3.Box(size, 0)
	return sdf.Transform3D(b, sdf.Translate3D(c))
}
