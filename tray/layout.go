// Package tray builds the charger tray insert: the solid body that carries
// the phone above a charging puck, and the subtractive solid that carves the
// charger bay, its cable channel and the maintenance access out of it.
package tray

import (
	"math"

	"github.com/soypat/gridtray/params"
)

// Manufacturing robustness margins. Overlap inflates every box at shared
// faces so boolean unions stay watertight regardless of floating point
// boundary alignment. Offset nudges subtractive solids past the surfaces
// they must cut through.
const (
	Overlap = 0.02 // mm
	Offset  = 0.01 // mm
)

// FitClearance is the axial play added to the bay cylinder so the puck
// drops in and seats without force.
const FitClearance = 0.5 // mm

// Default body options.
const (
	DefaultWedgeHeight  = 3.0 // mm
	DefaultCameraHeight = 4.0 // mm
	DefaultPad          = 4.0 // mm
)

// Options tune the tray body around the resolved phone and charger specs.
// Zero fields take the defaults above.
type Options struct {
	TopPad       float64 // padding between bay and camera relief
	BottomPad    float64 // padding between wedge and bay
	WedgeHeight  float64
	CameraHeight float64
}

func (o Options) withDefaults() Options {
	if o.TopPad == 0 {
		o.TopPad = DefaultPad
	}
	if o.BottomPad == 0 {
		o.BottomPad = DefaultPad
	}
	if o.WedgeHeight == 0 {
		o.WedgeHeight = DefaultWedgeHeight
	}
	if o.CameraHeight == 0 {
		o.CameraHeight = DefaultCameraHeight
	}
	return o
}

// Layout holds the lengths derived from a phone/charger pairing. All
// segments lie along the phone's long axis; x=0 is the phone center, the
// support wedge sits on the -X ("bottom") side and the camera relief on
// the +X ("top") side.
type Layout struct {
	WedgeLen  float64 // ramp segment
	BayLen    float64 // charger segment including its half-pads
	CameraLen float64 // camera-bump relief segment
	TopPad    float64
	BottomPad float64

	WedgeHeight  float64
	CameraHeight float64
	Height       float64 // overall tray height
}

// NewLayout derives the tray segment lengths. The segments satisfy
// WedgeLen + BayLen + CameraLen == phone length; the Overlap margin applied
// by the solid builder perturbs realized faces by at most that much.
func NewLayout(phone params.PhoneSpec, charger params.ChargerSpec, opt Options) Layout {
	opt = opt.withDefaults()
	l := Layout{
		TopPad:       opt.TopPad,
		BottomPad:    opt.BottomPad,
		WedgeHeight:  opt.WedgeHeight,
		CameraHeight: opt.CameraHeight,
	}
	l.WedgeLen = phone.Length/2 - charger.Diameter/2 - opt.BottomPad/2
	l.BayLen = charger.Diameter + opt.BottomPad/2 + opt.TopPad/2
	l.CameraLen = phone.Length/2 - charger.Diameter/2 - opt.TopPad/2
	l.Height = math.Max(opt.CameraHeight, math.Max(charger.Depth, opt.WedgeHeight))
	return l
}
