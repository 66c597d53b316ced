package surface

// Tree is one scattered surface object. Position is normalized to the
// terrain footprint: X and Z in [0,1], Y a fraction of the height range.
// Everything besides Position is opaque payload to the editing engine and
// must survive copy and removal untouched.
type Tree struct {
	Position    [3]float32
	Prototype   int
	WidthScale  float32
	HeightScale float32
	Rotation    float32 // radians about the Y axis
	Color       [4]float32
}
