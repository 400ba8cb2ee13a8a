// Package gridtray assembles a Gridfinity storage bin that parks a phone
// face-up on its wireless charger: a grid-sized bin gets a phone-shaped
// pocket, a support tray slides into the pocket, and the charger puck and
// its cable are carved out of tray and bin floor.
package gridtray

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gridtray/gridbin"
	"github.com/soypat/gridtray/params"
	"github.com/soypat/gridtray/shape"
	"github.com/soypat/gridtray/tray"
)

// Config collects everything Assemble needs. Phone and Charger must already
// be resolved (see params.ResolvePhone and params.ResolveCharger).
type Config struct {
	Phone   params.PhoneSpec
	Charger params.ChargerSpec
	Tray    tray.Options
	Bin     gridbin.Spec // HeightUnits == 0 derives the height from the contents
}

// Assemble builds the printable model: the bin minus the phone pocket, the
// tray seated on the pocket floor, and the charger cutout carved through
// both. The tray floor sits gridbin.BottomClearance above the bin floor so
// the charger access opening can pierce all the way through.
func Assemble(cfg Config) (sdf.SDF3, error) {
	if err := cfg.Phone.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Charger.Validate(); err != nil {
		return nil, err
	}

	lay := tray.NewLayout(cfg.Phone, cfg.Charger, cfg.Tray)
	bin := cfg.Bin
	if bin.HeightUnits == 0 {
		bin.HeightUnits = gridbin.AutoHeightUnits(lay.Height, cfg.Phone.Height)
	}
	if err := checkFit(cfg.Phone, bin); err != nil {
		return nil, err
	}

	host, err := bin.Solid()
	if err != nil {
		return nil, err
	}

	support, err := tray.Solid(cfg.Phone, cfg.Charger, lay)
	if err != nil {
		return nil, err
	}
	seat := sdf.Translate3D(r3.Vec{Z: gridbin.BottomClearance})
	support = sdf.Transform3D(support, seat)

	charger, err := tray.Cutout(cfg.Phone, cfg.Charger, lay, gridbin.BottomClearance+tray.Overlap)
	if err != nil {
		return nil, err
	}
	charger = sdf.Transform3D(charger, seat)

	pocket, err := phonePocket(cfg.Phone, bin)
	if err != nil {
		return nil, err
	}

	model := sdf.Union3D(sdf.Difference3D(host, pocket), support)
	return sdf.Difference3D(model, charger), nil
}

// Render meshes the assembled model into an STL file.
func Render(cfg Config, path string, meshCells int) error {
	model, err := Assemble(cfg)
	if err != nil {
		return err
	}
	return render.CreateSTL(path, render.NewOctreeRenderer(model, meshCells))
}

// phonePocket is the phone-outline cavity cut out of the bin: it starts at
// the tray seat and opens out the top so the phone can drop in.
func phonePocket(phone params.PhoneSpec, bin gridbin.Spec) (s sdf.SDF3, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("phone pocket: %v", r)
		}
	}()
	top := bin.HeightBreakdown().Total() + tray.Overlap
	h := top - gridbin.BottomClearance
	outline := shape.PhoneOutline(phone.Length, phone.Width, phone.Curve, phone.Smooth)
	s = sdf.Extrude3D(outline, h)
	s = sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: gridbin.BottomClearance + h/2}))
	return s, nil
}

// checkFit rejects a phone footprint wider than the bin's.
func checkFit(phone params.PhoneSpec, bin gridbin.Spec) error {
	maxX := float64(bin.CellsX)*gridbin.Pitch - (gridbin.Pitch - gridbin.CellSize)
	maxY := float64(bin.CellsY)*gridbin.Pitch - (gridbin.Pitch - gridbin.CellSize)
	if phone.Length > maxX || phone.Width > maxY {
		return fmt.Errorf("phone %gx%g mm does not fit a %dx%d bin (%gx%g mm)",
			phone.Length, phone.Width, bin.CellsX, bin.CellsY, maxX, maxY)
	}
	return nil
}
