package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSuperellipseOnEllipse(t *testing.T) {
	// with n=2 every sampled point lies on the true ellipse
	const a, b = 30.0, 20.0
	pts := SuperellipsePoints(a, b, 2)
	if len(pts) != 72 {
		t.Fatalf("want 72 samples, got %d", len(pts))
	}
	for i, p := range pts {
		v := (p.X/a)*(p.X/a) + (p.Y/b)*(p.Y/b)
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("sample %d: (x/a)^2+(y/b)^2 = %g", i, v)
		}
	}
}

func TestSuperellipseHigherExponentBulges(t *testing.T) {
	// larger n approaches the bounding rectangle: the 45 degree point
	// moves outward monotonically with n.
	const a, b = 10.0, 10.0
	prev := 0.0
	for _, n := range []float64{2, 3, 4, 6, 8} {
		p := SuperellipsePoints(a, b, n)[9] // theta = 45 degrees
		d := math.Hypot(p.X, p.Y)
		if d <= prev {
			t.Errorf("n=%g: 45 degree radius %g did not grow (prev %g)", n, d, prev)
		}
		prev = d
	}
}

func TestSuperellipseBadArgs(t *testing.T) {
	for _, tc := range []struct{ a, b, n float64 }{
		{0, 10, 2}, {10, -1, 2}, {10, 10, 0},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Superellipse(%g,%g,%g): expected panic", tc.a, tc.b, tc.n)
				}
			}()
			SuperellipsePoints(tc.a, tc.b, tc.n)
		}()
	}
}

func TestPhoneOutlineSymmetry(t *testing.T) {
	const l, w, curve, smooth = 149.6, 71.5, 34.0, 4.0
	s := PhoneOutline(l, w, curve, smooth)
	probes := []r2.Vec{
		{X: 10, Y: 5}, {X: 70, Y: 30}, {X: 74, Y: 35}, {X: 40, Y: 36},
		{X: 74.8, Y: 0}, {X: 0, Y: 35.75}, {X: 60, Y: 20},
	}
	for _, p := range probes {
		d := s.Evaluate(p)
		for _, q := range []r2.Vec{
			{X: -p.X, Y: p.Y}, {X: p.X, Y: -p.Y}, {X: -p.X, Y: -p.Y},
		} {
			if dq := s.Evaluate(q); math.Abs(d-dq) > 1e-9 {
				t.Errorf("probe %v vs %v: distance %g != %g", p, q, d, dq)
			}
		}
	}
}

func TestPhoneOutlineContainment(t *testing.T) {
	const l, w, curve, smooth = 149.6, 71.5, 34.0, 4.0
	s := PhoneOutline(l, w, curve, smooth)
	if d := s.Evaluate(r2.Vec{}); d >= 0 {
		t.Errorf("center should be inside, distance %g", d)
	}
	if d := s.Evaluate(r2.Vec{X: l / 2, Y: w / 2}); d <= 0 {
		t.Errorf("bounding box corner should be outside, distance %g", d)
	}
	// edge midpoints are on the boundary
	for _, p := range []r2.Vec{{X: l / 2}, {Y: w / 2}} {
		if d := s.Evaluate(p); math.Abs(d) > 1e-6 {
			t.Errorf("edge midpoint %v: distance %g, want ~0", p, d)
		}
	}
}

func TestClampRadius(t *testing.T) {
	size := r2.Vec{X: 40, Y: 20}
	for _, tc := range []struct{ in, want float64 }{
		{-5, 0},
		{0, 0},
		{4, 4},
		{10, 10},
		{25, 10},
		{math.Inf(1), 10},
	} {
		if got := ClampRadius(size, tc.in); got != tc.want {
			t.Errorf("ClampRadius(%v, %g) = %g, want %g", size, tc.in, got, tc.want)
		}
	}
}

func TestRoundRectOversizedRadius(t *testing.T) {
	size := r2.Vec{X: 40, Y: 20}
	oversized := RoundRect(size, 1000)
	clamped := RoundRect(size, 10)
	for _, p := range []r2.Vec{
		{}, {X: 19, Y: 9}, {X: 25, Y: 0}, {X: 20, Y: 10}, {X: -15, Y: -8},
	} {
		if d0, d1 := oversized.Evaluate(p), clamped.Evaluate(p); math.Abs(d0-d1) > 1e-12 {
			t.Errorf("probe %v: oversized radius %g != clamped %g", p, d0, d1)
		}
	}
}

func TestWedge(t *testing.T) {
	const l, w, h = 30.0, 70.0, 4.0
	s := Wedge(l, w, h)
	inside := []r3.Vec{
		{X: -l/2 + 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -h / 4},
		{X: l/2 - 1, Y: w/2 - 1, Z: -h/2 + 0.1},
	}
	for _, p := range inside {
		if d := s.Evaluate(p); d >= 0 {
			t.Errorf("point %v should be inside, distance %g", p, d)
		}
	}
	outside := []r3.Vec{
		{X: 0, Y: 0, Z: h / 4},         // above the hypotenuse
		{X: l/2 - 1, Y: 0, Z: h/2 - 1}, // past the slope
		{X: 0, Y: w/2 + 1, Z: -h / 4},  // beyond the extrusion
	}
	for _, p := range outside {
		if d := s.Evaluate(p); d <= 0 {
			t.Errorf("point %v should be outside, distance %g", p, d)
		}
	}
	bb := s.Bounds()
	if math.Abs(bb.Max.X-l/2) > 1e-9 || math.Abs(bb.Max.Z-h/2) > 1e-9 || math.Abs(bb.Max.Y-w/2) > 1e-9 {
		t.Errorf("bounds %+v do not match %gx%gx%g prism", bb, l, w, h)
	}
}
