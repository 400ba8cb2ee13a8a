package params

// Preset tables. Dimensions are manufacturer body measurements in mm.
// Curve values are eyeballed from case cross sections; Smooth is the
// superellipse exponent that reproduces the corner profile.

// Phone preset indices.
const (
	PhoneIPhone17       = 1
	PhoneIPhone17Pro    = 2
	PhoneIPhone17ProMax = 3
	PhoneIPhone16       = 4
	PhoneIPhone16Pro    = 5
	PhoneIPhone15       = 6
)

var phonePresets = map[int]PhoneSpec{
	PhoneIPhone17:       {Length: 149.6, Width: 71.5, Height: 7.95, Curve: 34.0, Smooth: 4},
	PhoneIPhone17Pro:    {Length: 150.0, Width: 71.9, Height: 8.75, Curve: 34.0, Smooth: 4},
	PhoneIPhone17ProMax: {Length: 163.4, Width: 78.0, Height: 8.75, Curve: 38.0, Smooth: 4},
	PhoneIPhone16:       {Length: 147.6, Width: 71.6, Height: 7.80, Curve: 30.0, Smooth: 4},
	PhoneIPhone16Pro:    {Length: 149.6, Width: 71.5, Height: 8.25, Curve: 30.0, Smooth: 4},
	PhoneIPhone15:       {Length: 147.6, Width: 71.6, Height: 7.80, Curve: 28.0, Smooth: 4},
}

// Charger preset indices.
const (
	ChargerMagSafe25W = 1
	ChargerMagSafe15W = 2
	ChargerQiPuck     = 3
)

var chargerPresets = map[int]ChargerSpec{
	ChargerMagSafe25W: {Diameter: 55.5, Depth: 4.37, CableDiameter: 3.2, PlugWidth: 8.6},
	ChargerMagSafe15W: {Diameter: 55.9, Depth: 5.35, CableDiameter: 3.0, PlugWidth: 8.4},
	ChargerQiPuck:     {Diameter: 58.0, Depth: 10.0, CableDiameter: 3.5, PlugWidth: 9.0},
}
