// Command gridtray generates the STL for a Gridfinity phone-charger storage
// tray: a bin with a phone-shaped pocket, a support tray inside it and the
// charger puck and cable carved out. Phone and charger come from presets or
// explicit dimensions, everything in millimeters.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chewxy/math32"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"

	"github.com/soypat/gridtray"
	"github.com/soypat/gridtray/gridbin"
	"github.com/soypat/gridtray/params"
)

func main() {
	var (
		phonePreset   = flag.Int("phone", params.PhoneIPhone17, "phone preset, 0 for custom -phone-* dimensions")
		chargerPreset = flag.Int("charger", params.ChargerMagSafe25W, "charger preset, 0 for custom -charger-* dimensions")
		angle         = flag.Float64("angle", 315, "cable exit azimuth in degrees")

		phoneLength = flag.Float64("phone-length", 0, "custom phone length")
		phoneWidth  = flag.Float64("phone-width", 0, "custom phone width")
		phoneHeight = flag.Float64("phone-height", 0, "custom phone thickness")
		phoneCurve  = flag.Float64("phone-curve", 0, "custom phone corner curve radius")
		phoneSmooth = flag.Float64("phone-smooth", 4, "custom phone corner superellipse exponent")

		chargerDia   = flag.Float64("charger-dia", 0, "custom charger puck diameter")
		chargerDepth = flag.Float64("charger-depth", 0, "custom charger puck thickness")
		cableDia     = flag.Float64("cable-dia", 0, "custom charger cable diameter")
		plugWidth    = flag.Float64("plug-width", 0, "custom charger plug width")

		coverThickness = flag.Float64("cover", 0, "phone cover thickness, 0 for no cover")
		coverTolerance = flag.Float64("cover-tol", 0.5, "extra clearance around a covered phone")

		gridX       = flag.Int("grid-x", 4, "bin cells along the phone")
		gridY       = flag.Int("grid-y", 2, "bin cells across the phone")
		heightUnits = flag.Int("height-units", 0, "bin height in 7mm units, 0 to fit the contents")
		magnets     = flag.Bool("magnets", true, "magnet pockets under each cell")
		lip         = flag.Bool("lip", false, "stacking lip on the bin rim")

		output  = flag.String("o", "gridtray.stl", "output STL path")
		cells   = flag.Int("cells", 200, "mesher resolution in cells per axis")
		preview = flag.String("preview", "", "also render a PNG preview to this path")
	)
	flag.Parse()

	var cover params.Cover
	if *coverThickness > 0 {
		cover = params.Cover{Thickness: *coverThickness, Tolerance: *coverTolerance}
	}
	phone, err := params.ResolvePhone(*phonePreset, params.PhoneSpec{
		Length: *phoneLength,
		Width:  *phoneWidth,
		Height: *phoneHeight,
		Curve:  *phoneCurve,
		Smooth: *phoneSmooth,
	}, cover)
	if err != nil {
		log.Fatal(err)
	}
	charger, err := params.ResolveCharger(*chargerPreset, params.ChargerSpec{
		Diameter:      *chargerDia,
		Depth:         *chargerDepth,
		CableDiameter: *cableDia,
		PlugWidth:     *plugWidth,
		CableAngle:    *angle,
	}, *angle)
	if err != nil {
		log.Fatal(err)
	}

	cfg := gridtray.Config{
		Phone:   phone,
		Charger: charger,
		Bin: gridbin.Spec{
			CellsX:      *gridX,
			CellsY:      *gridY,
			HeightUnits: *heightUnits,
			Magnets:     *magnets,
			Lip:         *lip,
		},
	}
	fmt.Printf("phone %gx%gx%g mm, charger %g mm puck, cable at %g deg\n",
		phone.Length, phone.Width, phone.Height, charger.Diameter, *angle)
	if err := gridtray.Render(cfg, *output, *cells); err != nil {
		log.Fatal(err)
	}
	if err := verifySTL(*output); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", *output)

	if *preview != "" {
		if err := stlToPNG(*output, *preview); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *preview)
	}
}

// verifySTL walks the binary STL and rejects empty or non-finite geometry,
// the same screening the mesher applies per triangle while rendering.
func verifySTL(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var header [80]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return fmt.Errorf("%s: reading header: %w", path, err)
	}
	var count uint32
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("%s: reading triangle count: %w", path, err)
	}
	if count == 0 {
		return errors.New(path + ": empty mesh")
	}
	// 50 byte triangle record: normal, 3 vertices, attribute count
	var tri struct {
		Normal [3]float32
		Verts  [3][3]float32
		Attr   uint16
	}
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(f, binary.LittleEndian, &tri); err != nil {
			return fmt.Errorf("%s: triangle %d: %w", path, i, err)
		}
		for _, v := range tri.Verts {
			for _, c := range v {
				if math32.IsNaN(c) || math32.IsInf(c, 0) {
					return fmt.Errorf("%s: triangle %d has non-finite vertex", path, i)
				}
			}
		}
	}
	return nil
}

// stlToPNG renders a shaded preview of the STL.
func stlToPNG(stlName, outputname string) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		width, height = 768, 432
		fovy          = 30
		near, far     = 1, 10
	)
	var (
		eye    = fauxgl.V(2.4, 2.4, 2.4)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 0, 1)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	mesh.BiUnitCube()
	// supersample then downscale for antialiasing
	context := fauxgl.NewContext(2*width, 2*height)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, float64(width)/height, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#468966")
	context.Shader = shader
	context.DrawMesh(mesh)
	img := resize.Resize(width, height, context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(outputname, img)
}
