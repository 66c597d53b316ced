package sculpt

import (
	"github.com/Faultbox/terracarve/internal/engine/brush"
	"github.com/Faultbox/terracarve/internal/engine/raster"
	"github.com/Faultbox/terracarve/pkg/math"
)

// renormEpsilon guards the redistribution divide when all non-target
// channels are already near zero.
const renormEpsilon = 1e-6

// PaintBlend adds amount of the target ground-texture layer inside the
// brush, then renormalizes every pixel of the fetched window so the
// per-pixel channel weights keep summing to 1. A terrain with no blend
// layers makes the call a no-op.
func (e *Editor) PaintBlend(point math.Vec3, radius math.Vec2, layer int, amount float32) {
	if e.terrain == nil {
		return
	}
	e.paintBlend(point, radius, layer, amount, nil, 0)
}

// PaintBlendStamp is PaintBlend with the falloff weight replaced by a stamp
// lookup, optionally rotated by angle radians. A nil stamp makes the call a
// no-op.
func (e *Editor) PaintBlendStamp(point math.Vec3, radius math.Vec2, layer int, amount float32, stamp brush.Field, angle float32) {
	if e.terrain == nil {
		return
	}
	if stamp == nil {
		e.log.Debug("blend stamp brush without a stamp, skipping")
		return
	}
	e.paintBlend(point, radius, layer, amount, stamp, angle)
}

func (e *Editor) paintBlend(point math.Vec3, radius math.Vec2, layer int, amount float32, stamp brush.Field, angle float32) {
	aw, ah, layers := e.terrain.AlphaSize()
	if layers == 0 {
		e.log.Debug("terrain has no blend layers, skipping paint")
		return
	}
	if layer < 0 {
		layer = 0
	}
	if layer > layers-1 {
		layer = layers - 1
	}

	r := brush.Map(point, e.terrain.Origin(), e.terrain.Size(), radius, aw, ah)
	win := e.terrain.Alphamaps(r.X0, r.Z0, r.W(), r.H())

	for pz := r.Z0; pz <= r.Z1; pz++ {
		for px := r.X0; px <= r.X1; px++ {
			var w float32
			var ok bool
			if stamp != nil {
				w, ok = r.StampWeight(stamp, px, pz, angle)
			} else {
				w, ok = r.Falloff(px, pz)
			}
			if !ok {
				continue
			}
			ix, iz := px-r.X0, pz-r.Z0
			win.Set(ix, iz, layer, math.Clamp01(win.At(ix, iz, layer)+amount*w))
		}
	}

	renormalize(win, layer)
	e.terrain.SetAlphamaps(win)
}

// renormalize rescales the non-target channels of every pixel in the window
// so all channels sum to 1 again. Pixels whose target value did not change
// come out untouched, so running over the full window (including pixels
// outside the falloff) is an identity for them. When the non-target channels
// hold no weight the target is forced to exactly 1.
func renormalize(win *raster.LayerWindow, target int) {
	for iz := 0; iz < win.H; iz++ {
		for ix := 0; ix < win.W; ix++ {
			others := float32(0)
			for l := 0; l < win.Layers; l++ {
				if l != target {
					others += win.At(ix, iz, l)
				}
			}
			remain := math.Clamp01(1 - win.At(ix, iz, target))
			if others > renormEpsilon {
				scale := remain / others
				for l := 0; l < win.Layers; l++ {
					if l != target {
						win.Set(ix, iz, l, win.At(ix, iz, l)*scale)
					}
				}
			} else {
				win.Set(ix, iz, target, 1)
				for l := 0; l < win.Layers; l++ {
					if l != target {
						win.Set(ix, iz, l, 0)
					}
				}
			}
		}
	}
}
