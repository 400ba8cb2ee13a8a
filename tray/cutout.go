package tray

import (
	"math"
	"runtime/debug"

	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gridtray/params"
)

// Face identifies the tray face a cable channel exits through.
type Face int

const (
	FaceTop    Face = iota // +X, the camera relief side
	FaceBottom             // -X, the wedge side
)

func (f Face) String() string {
	if f == FaceTop {
		return "top"
	}
	return "bottom"
}

// ExitFace classifies a cable azimuth in degrees. Angles below 90 or above
// 270 route the cable out the top face, the complementary range routes it
// out the bottom face. Exactly 90 and 270 are bottom exits.
func ExitFace(angle float64) Face {
	if math.Cos(sdfx.DtoR(angle)) > 0 {
		return FaceTop
	}
	return FaceBottom
}

// foldAngle folds an azimuth into [0,90] degrees relative to its exit face.
func foldAngle(angle float64) float64 {
	switch f := ExitFace(angle); f {
	case FaceTop:
		if angle > 270 {
			return 360 - angle
		}
		return angle
	default:
		return math.Abs(180 - angle)
	}
}

// ChannelLength returns the cable channel run from the bay wall through the
// exit face of a tray with the given phone length. The radius*(1-cos) term
// projects the folded azimuth onto the long axis so the channel clears the
// curved bay wall at shallow exit angles.
func ChannelLength(phoneLength, bayRadius, angle float64) float64 {
	a := sdfx.DtoR(foldAngle(angle))
	return phoneLength/2 - bayRadius + bayRadius*(1-math.Cos(a))
}

// Cutout returns the subtractive solid for the charger bay: the puck
// cylinder, the maintenance-access hull below it, and the cable channel.
// It shares the tray frame (XY origin at footprint center, tray floor at
// z=0) and reaches floorDepth below the floor so the access hull punches
// through whatever the tray rests on.
func Cutout(phone params.PhoneSpec, charger params.ChargerSpec, lay Layout, floorDepth float64) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return cutout(phone, charger, lay, floorDepth), err
}

func cutout(phone params.PhoneSpec, charger params.ChargerSpec, lay Layout, floorDepth float64) sdf.SDF3 {
	var (
		bayR     = charger.Diameter / 2
		theta    = sdfx.DtoR(charger.CableAngle)
		bayFloor = lay.Height - charger.Depth - FitClearance // z of the puck underside
	)

	// puck cylinder, top face flush with the tray surface plus Offset so the
	// cut cannot leave a zero-thickness skin
	cylH := charger.Depth + FitClearance + Offset
	var cyl sdf.SDF3 = must3.Cylinder(cylH, bayR, 0)
	cyl = sdf.Transform3D(cyl, sdf.Translate3D(r3.Vec{Z: lay.Height + Offset - cylH/2}))

	// maintenance access: hull of a cylinder at the bay center and one
	// towards the cable exit, spanning everything below the puck so the
	// charger can be pushed out from underneath
	accessR := charger.PlugWidth
	accessOfs := math.Max(0, bayR-accessR)
	accessH := bayFloor + floorDepth + 2*Offset
	access := sdf.Extrude3D(must2.Line(accessOfs, accessR), accessH)
	m := sdf.Translate3D(r3.Vec{
		X: accessOfs / 2 * math.Cos(theta),
		Y: accessOfs / 2 * math.Sin(theta),
		Z: (bayFloor - floorDepth) / 2,
	}).Mul(sdf.RotateZ(theta))
	access = sdf.Transform3D(access, m)

	return sdf.Union3D(cyl, access, channel(phone, charger, lay))
}

// channel returns the cable channel: the hull of three cable-diameter
// cylinders stacked along the bay's vertical axis, run from the bay wall
// out through the exit face. The slot opens past the tray surface by a
// cable radius so the cable drops in from above.
func channel(phone params.PhoneSpec, charger params.ChargerSpec, lay Layout) sdf.SDF3 {
	var (
		bayR   = charger.Diameter / 2
		cableR = charger.CableDiameter / 2
		theta  = sdfx.DtoR(charger.CableAngle)
		a      = sdfx.DtoR(foldAngle(charger.CableAngle))
		spread = charger.Depth + FitClearance
		length = ChannelLength(phone.Length, bayR, charger.CableAngle) + 2*Overlap
	)

	// stacked-cylinder hull: a capsule profile spread along the vertical
	prof := must2.Line(spread, cableR)
	s := sdf.Extrude3D(prof, length)
	// stand the capsule up and point the run along the long axis
	s = sdf.Transform3D(s, sdf.RotateY(sdfx.DtoR(90)))
	dir := 1.0
	if ExitFace(charger.CableAngle) == FaceBottom {
		dir = -1
	}
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{
		X: dir * (bayR*math.Cos(a) + length/2 - Overlap),
		Y: bayR * math.Sin(theta),
		Z: lay.Height - charger.Depth - FitClearance + spread/2,
	}))
}
