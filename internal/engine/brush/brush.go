// Package brush maps a world-space brush to per-layer grid windows and
// computes per-pixel falloff weights.
package brush

import (
	"github.com/Faultbox/terracarve/pkg/math"
)

// Region is an elliptical brush footprint resolved against one raster
// layer's resolution. The center cell may lie outside the grid (brushes
// near or past an edge are allowed to partially affect it); the window
// [X0,X1]x[Z0,Z1] is always clamped to valid indices.
type Region struct {
	CX, CZ int // brush center in grid cells
	RX, RZ int // pixel radius per axis, always >= 1
	X0, Z0 int // clamped window top-left, inclusive
	X1, Z1 int // clamped window bottom-right, inclusive
}

// Map resolves a world-space brush against a layer of resolution resX*resZ
// cells covering the footprint given by origin and size. The normalized
// position is deliberately not clamped, so a center outside the footprint
// keeps its true cell coordinates instead of snapping to the edge and
// producing seam artifacts; the per-cell distance test then excludes
// whatever the clamped window still covers.
func Map(point, origin, size math.Vec3, radius math.Vec2, resX, resZ int) Region {
	local := point.Sub(origin)
	normX := local.X / size.X
	normZ := local.Z / size.Z

	cx := math.RoundToInt(normX * float32(resX-1))
	cz := math.RoundToInt(normZ * float32(resZ-1))

	rx := pixelRadius(radius.X, size.X, resX)
	rz := pixelRadius(radius.Y, size.Z, resZ)

	return Region{
		CX: cx, CZ: cz,
		RX: rx, RZ: rz,
		X0: clampIndex(cx-rx, resX), Z0: clampIndex(cz-rz, resZ),
		X1: clampIndex(cx+rx, resX), Z1: clampIndex(cz+rz, resZ),
	}
}

// pixelRadius converts a world radius to cells on one axis, never less than 1.
func pixelRadius(radius, span float32, res int) int {
	r := math.RoundToInt(radius / span * float32(res-1))
	if r < 1 {
		r = 1
	}
	return r
}

func clampIndex(i, res int) int {
	if i < 0 {
		return 0
	}
	if i > res-1 {
		return res - 1
	}
	return i
}

// W returns the window width in cells.
func (r Region) W() int { return r.X1 - r.X0 + 1 }

// H returns the window height in cells.
func (r Region) H() int { return r.Z1 - r.Z0 + 1 }

// Distance returns the normalized elliptical distance of grid cell (px, pz)
// from the brush center: 0 at the center, 1 on the brush boundary.
func (r Region) Distance(px, pz int) float32 {
	dx := float32(px-r.CX) / float32(r.RX)
	dz := float32(pz-r.CZ) / float32(r.RZ)
	return math.Sqrt(dx*dx + dz*dz)
}

// Falloff returns the smoothstep falloff weight for grid cell (px, pz) and
// whether the cell is inside the brush at all. Cells with distance > 1 are
// excluded entirely. The weight is 1 at the center and 0 on the boundary.
func (r Region) Falloff(px, pz int) (float32, bool) {
	d := r.Distance(px, pz)
	if d > 1 {
		return 0, false
	}
	return math.Smoothstep01(1 - d), true
}

// UV returns the stamp texture coordinate for grid cell (px, pz): the
// normalized per-axis offset remapped from [-1,1] to [0,1], optionally
// rotated about (0.5, 0.5) by angle radians, then clamped. An exact zero
// angle skips the rotation.
func (r Region) UV(px, pz int, angle float32) (u, v float32) {
	u = float32(px-r.CX)/float32(r.RX)*0.5 + 0.5
	v = float32(pz-r.CZ)/float32(r.RZ)*0.5 + 0.5
	if angle != 0 {
		sin, cos := math.Sincos(angle)
		du := u - 0.5
		dv := v - 0.5
		u = du*cos - dv*sin + 0.5
		v = du*sin + dv*cos + 0.5
	}
	return math.Clamp01(u), math.Clamp01(v)
}

// StampWeight returns the sampled stamp intensity for grid cell (px, pz) and
// whether the cell is inside the brush. The elliptical inclusion test is the
// same as Falloff; the sampled value replaces the smoothstep weight.
func (r Region) StampWeight(stamp Field, px, pz int, angle float32) (float32, bool) {
	if r.Distance(px, pz) > 1 {
		return 0, false
	}
	u, v := r.UV(px, pz, angle)
	return stamp.Sample(u, v), true
}
