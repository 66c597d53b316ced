package sculpt

import (
	"github.com/Faultbox/terracarve/internal/engine/brush"
	"github.com/Faultbox/terracarve/pkg/math"
)

// RaiseHeight adds amount (a signed normalized delta, negative lowers) to
// every height cell inside the elliptical brush, weighted by the smoothstep
// falloff and clamped to [0,1].
func (e *Editor) RaiseHeight(point math.Vec3, radius math.Vec2, amount float32) {
	if e.terrain == nil {
		return
	}
	res := e.terrain.HeightResolution()
	r := brush.Map(point, e.terrain.Origin(), e.terrain.Size(), radius, res, res)
	e.raise(r, amount, r.Falloff)
}

// RaiseHeightStamp is RaiseHeight with the falloff weight replaced by a
// bilinear lookup into the stamp, optionally rotated by angle radians. A nil
// stamp makes the call a no-op.
func (e *Editor) RaiseHeightStamp(point math.Vec3, radius math.Vec2, amount float32, stamp brush.Field, angle float32) {
	if e.terrain == nil {
		return
	}
	if stamp == nil {
		e.log.Debug("height stamp brush without a stamp, skipping")
		return
	}
	res := e.terrain.HeightResolution()
	r := brush.Map(point, e.terrain.Origin(), e.terrain.Size(), radius, res, res)
	e.raise(r, amount, func(px, pz int) (float32, bool) {
		return r.StampWeight(stamp, px, pz, angle)
	})
}

func (e *Editor) raise(r brush.Region, amount float32, weight func(px, pz int) (float32, bool)) {
	win := e.terrain.Heights(r.X0, r.Z0, r.W(), r.H())
	for pz := r.Z0; pz <= r.Z1; pz++ {
		for px := r.X0; px <= r.X1; px++ {
			w, ok := weight(px, pz)
			if !ok {
				continue
			}
			ix, iz := px-r.X0, pz-r.Z0
			win.Set(ix, iz, math.Clamp01(win.At(ix, iz)+amount*w))
		}
	}
	smoothWindow(win, e.smoothIterations, e.smoothStrength)
	e.writeHeights(win)
}
