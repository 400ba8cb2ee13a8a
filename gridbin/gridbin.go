// Package gridbin builds the Gridfinity host container the charger tray is
// embedded in: a grid-sized bin with the standard base, optional magnet
// pockets and stacking lip, and the 7 mm height-unit bookkeeping.
package gridbin

import (
	"fmt"
	"math"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gridtray/shape"
)

// Gridfinity standard dimensions in mm.
const (
	Pitch        = 42.0 // grid cell spacing
	CellSize     = 41.5 // bin footprint per cell
	HeightUnit   = 7.0  // bin heights are multiples of this
	BaseHeight   = 4.75 // tapered base plinth
	LipHeight    = 4.4  // stacking lip above the body
	CornerRadius = 4.0  // outer corner rounding
	baseTaper    = 0.8  // per-side inset at the bottom of a base plinth
	magnetOffset = 13.0 // magnet center distance from a cell center
	MagnetDia    = 6.5  // press-fit pocket for 6x2 magnets
	MagnetDepth  = 2.4
)

// Clearances used when a bin height is derived from its contents.
const (
	CableClearance  = 2.85 // room above the tray for the routed cable
	BottomClearance = 2.0  // gap between bin floor and tray floor
)

// Spec describes a bin. HeightUnits of 0 is not valid here; use
// AutoHeightUnits to derive it from the tray contents first.
type Spec struct {
	CellsX, CellsY int
	HeightUnits    int
	Magnets        bool // magnet pockets under each cell
	Lip            bool // stacking lip on the top rim
}

func (s Spec) validate() {
	if s.CellsX <= 0 || s.CellsY <= 0 {
		panic(fmt.Sprintf("gridbin: cell counts must be positive, got %dx%d", s.CellsX, s.CellsY))
	}
	if s.HeightUnits <= 0 {
		panic(fmt.Sprintf("gridbin: height units must be positive, got %d", s.HeightUnits))
	}
}

// HeightForUnits translates a unit count into a physical height.
func HeightForUnits(units int) float64 {
	return float64(units) * HeightUnit
}

// UnitsForHeight returns the smallest unit count covering a physical height.
func UnitsForHeight(mm float64) int {
	return int(math.Ceil(mm / HeightUnit))
}

// AutoHeightUnits derives the bin height from its contents: the tray, the
// cable routed above it, half the reclined phone, and the floor gap.
func AutoHeightUnits(trayHeight, phoneHeight float64) int {
	return UnitsForHeight(trayHeight + CableClearance + phoneHeight/2 + BottomClearance)
}

// Breakdown reports how a bin's height divides into its stages.
type Breakdown struct {
	Base float64
	Body float64
	Lip  float64
}

// Total returns the overall bin height.
func (b Breakdown) Total() float64 { return b.Base + b.Body + b.Lip }

// HeightBreakdown reports the bin's base/body/lip heights.
func (s Spec) HeightBreakdown() Breakdown {
	b := Breakdown{
		Base: BaseHeight,
		Body: HeightForUnits(s.HeightUnits) - BaseHeight,
	}
	if s.Lip {
		b.Lip = LipHeight
	}
	return b
}

// Solid returns the container solid. The bin is centered on the XY origin
// with its base plinths starting at z=0.
func (s Spec) Solid() (_ sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = fmt.Errorf("gridbin: %v\n%s", a, debug.Stack())
		}
	}()
	return s.solid(), err
}

// Render writes the bin alone as an STL file, mostly useful to check grid
// fit before committing to a full tray print.
func (s Spec) Render(path string, meshCells int) error {
	solid, err := s.Solid()
	if err != nil {
		return err
	}
	return render.CreateSTL(path, render.NewOctreeRenderer(solid, meshCells))
}

func (s Spec) solid() sdf.SDF3 {
	s.validate()
	bd := s.HeightBreakdown()
	footprint := r2.Vec{
		X: float64(s.CellsX)*Pitch - (Pitch - CellSize),
		Y: float64(s.CellsY)*Pitch - (Pitch - CellSize),
	}

	// body above the base plinths
	body := sdf.Extrude3D(shape.RoundRect(footprint, CornerRadius), bd.Body)
	body = sdf.Transform3D(body, sdf.Translate3D(r3.Vec{Z: bd.Base + bd.Body/2}))

	// per-cell tapered base so the bin seats into a Gridfinity baseplate
	cellTop := r2.Vec{X: CellSize, Y: CellSize}
	cellBottom := r2.Vec{X: CellSize - 2*baseTaper, Y: CellSize - 2*baseTaper}
	base := sdf.Loft3D(
		shape.RoundRect(cellBottom, CornerRadius-baseTaper),
		shape.RoundRect(cellTop, CornerRadius),
		bd.Base, 0,
	)
	base = sdf.Transform3D(base, sdf.Translate3D(r3.Vec{Z: bd.Base / 2}))
	cells := sdf.Array3D(base, sdf.V3i{s.CellsX, s.CellsY, 1}, r3.Vec{X: Pitch, Y: Pitch})
	// Array3D grows towards +X+Y from the first copy; recenter on origin.
	cells3 := sdf.Transform3D(cells, sdf.Translate3D(r3.Vec{
		X: -float64(s.CellsX-1) * Pitch / 2,
		Y: -float64(s.CellsY-1) * Pitch / 2,
	}))

	var bin sdf.SDF3 = sdf.Union3D(cells3, body)

	if s.Lip {
		lip := s.lip(footprint, bd)
		bin = sdf.Union3D(bin, lip)
	}
	if s.Magnets {
		bin = sdf.Difference3D(bin, s.magnetPockets())
	}
	return bin
}

// lip returns the stacking rim above the body: the footprint ring left by
// subtracting the next bin's base seat.
func (s Spec) lip(footprint r2.Vec, bd Breakdown) sdf.SDF3 {
	outer := sdf.Extrude3D(shape.RoundRect(footprint, CornerRadius), bd.Lip)
	seat := r2.Vec{X: footprint.X - 2*baseTaper, Y: footprint.Y - 2*baseTaper}
	inner := sdf.Extrude3D(shape.RoundRect(seat, CornerRadius-baseTaper), bd.Lip+1)
	ring := sdf.Difference3D(outer, inner)
	return sdf.Transform3D(ring, sdf.Translate3D(r3.Vec{Z: bd.Base + bd.Body + bd.Lip/2}))
}

// magnetPockets returns the press-fit pockets under every cell, opening
// through the bin floor.
func (s Spec) magnetPockets() sdf.SDF3 {
	pocket := must3.Cylinder(MagnetDepth+1, MagnetDia/2, 0)
	var pockets []sdf.SDF3
	for ix := 0; ix < s.CellsX; ix++ {
		for iy := 0; iy < s.CellsY; iy++ {
			cx := (float64(ix) - float64(s.CellsX-1)/2) * Pitch
			cy := (float64(iy) - float64(s.CellsY-1)/2) * Pitch
			for _, dx := range []float64{-magnetOffset, magnetOffset} {
				for _, dy := range []float64{-magnetOffset, magnetOffset} {
					pockets = append(pockets, sdf.Transform3D(pocket,
						sdf.Translate3D(r3.Vec{X: cx + dx, Y: cy + dy, Z: (MagnetDepth - 1) / 2})))
				}
			}
		}
	}
	return sdf.Union3D(pockets...)
}
