package sculpt

import (
	"github.com/Faultbox/terracarve/internal/engine/brush"
	"github.com/Faultbox/terracarve/pkg/math"
)

// PaintDetail adds delta (scaled by the falloff) to the density cells of one
// vegetation layer inside the brush, clamping every cell to [0, maxDensity].
// A per-pixel increment that rounds to zero is coerced to the sign of delta,
// so a slow brush still accumulates instead of silently doing nothing. The
// layer index is clamped into the valid range; a terrain with no detail
// layers makes the call a no-op.
func (e *Editor) PaintDetail(point math.Vec3, radius math.Vec2, layer, delta, maxDensity int) {
	if e.terrain == nil {
		return
	}
	layers := e.terrain.DetailLayers()
	if layers == 0 {
		e.log.Debug("terrain has no detail layers, skipping paint")
		return
	}
	if layer < 0 {
		layer = 0
	}
	if layer > layers-1 {
		layer = layers - 1
	}

	dw, dh := e.terrain.DetailSize()
	r := brush.Map(point, e.terrain.Origin(), e.terrain.Size(), radius, dw, dh)
	win := e.terrain.DetailLayer(layer, r.X0, r.Z0, r.W(), r.H())

	for pz := r.Z0; pz <= r.Z1; pz++ {
		for px := r.X0; px <= r.X1; px++ {
			w, ok := r.Falloff(px, pz)
			if !ok {
				continue
			}
			inc := math.RoundToInt(float32(delta) * w)
			if inc == 0 && delta != 0 {
				if delta > 0 {
					inc = 1
				} else {
					inc = -1
				}
			}
			ix, iz := px-r.X0, pz-r.Z0
			v := win.At(ix, iz) + inc
			if v < 0 {
				v = 0
			}
			if v > maxDensity {
				v = maxDensity
			}
			win.Set(ix, iz, v)
		}
	}
	e.terrain.SetDetailLayer(layer, win)
}
