// Package params resolves phone and charger measurements from preset tables
// or custom overrides into the concrete numeric specs consumed by the
// geometry builders.
package params

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned when a preset index matches no table entry.
// The resolver fails loudly instead of handing back a zero-filled spec.
var ErrUnknownPreset = errors.New("unknown preset index")

// CustomPreset selects the caller supplied spec instead of a table entry.
const CustomPreset = 0

// PhoneSpec holds the resolved phone geometry in millimeters.
type PhoneSpec struct {
	Length float64 // long axis
	Width  float64 // short axis
	Height float64 // body thickness
	Curve  float64 // corner curve radius
	Smooth float64 // superellipse exponent of the corner curve
}

// Validate checks the PhoneSpec invariants.
func (p PhoneSpec) Validate() error {
	if p.Width <= 0 || p.Length <= p.Width {
		return fmt.Errorf("phone: need length > width > 0, got %gx%g", p.Length, p.Width)
	}
	if p.Height <= 0 {
		return fmt.Errorf("phone: height must be positive, got %g", p.Height)
	}
	if p.Curve <= 0 || p.Curve > p.Width/2 {
		return fmt.Errorf("phone: corner curve %g outside (0, %g]", p.Curve, p.Width/2)
	}
	return nil
}

// ChargerSpec holds the resolved charger puck geometry in millimeters.
// CableAngle is the azimuth in degrees at which the cable leaves the puck.
type ChargerSpec struct {
	Diameter      float64
	Depth         float64 // bay cutout height
	CableDiameter float64
	PlugWidth     float64
	CableAngle    float64 // degrees, [0,360)
}

// Validate checks the ChargerSpec invariants.
func (c ChargerSpec) Validate() error {
	if c.CableDiameter <= 0 || c.PlugWidth <= c.CableDiameter || c.Diameter <= c.PlugWidth {
		return fmt.Errorf("charger: need diameter > plug width > cable diameter > 0, got %g > %g > %g",
			c.Diameter, c.PlugWidth, c.CableDiameter)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("charger: depth must be positive, got %g", c.Depth)
	}
	if c.CableAngle < 0 || c.CableAngle >= 360 {
		return fmt.Errorf("charger: cable angle %g outside [0,360)", c.CableAngle)
	}
	return nil
}

// Cover describes a phone case worn while the phone sits in the tray.
// Thickness is added per covered face, Tolerance is the printing fit
// allowance added per side.
type Cover struct {
	Thickness float64
	Tolerance float64
}

// apply grows a bare phone spec by the cover and fit allowances.
func (cv Cover) apply(p PhoneSpec) PhoneSpec {
	perSide := cv.Thickness + cv.Tolerance
	p.Length += 2 * perSide
	p.Width += 2 * perSide
	p.Height += cv.Thickness + cv.Tolerance
	// a case rounds the corner off further out
	p.Curve += cv.Thickness
	return p
}

// ResolvePhone maps a preset index to a PhoneSpec, adjusted by the cover
// allowances. Preset CustomPreset selects the custom spec as-is (still
// adjusted and validated). Unknown indices return ErrUnknownPreset.
func ResolvePhone(preset int, custom PhoneSpec, cover Cover) (PhoneSpec, error) {
	p := custom
	if preset != CustomPreset {
		var ok bool
		p, ok = phonePresets[preset]
		if !ok {
			return PhoneSpec{}, fmt.Errorf("phone preset %d: %w", preset, ErrUnknownPreset)
		}
	}
	p = cover.apply(p)
	if err := p.Validate(); err != nil {
		return PhoneSpec{}, err
	}
	return p, nil
}

// ResolveCharger maps a preset index to a ChargerSpec. The cable angle is
// taken from the caller for table presets since it is a tray routing choice,
// not a property of the puck.
func ResolveCharger(preset int, custom ChargerSpec, cableAngle float64) (ChargerSpec, error) {
	c := custom
	if preset != CustomPreset {
		var ok bool
		c, ok = chargerPresets[preset]
		if !ok {
			return ChargerSpec{}, fmt.Errorf("charger preset %d: %w", preset, ErrUnknownPreset)
		}
		c.CableAngle = cableAngle
	}
	if err := c.Validate(); err != nil {
		return ChargerSpec{}, err
	}
	return c, nil
}
