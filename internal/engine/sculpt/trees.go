package sculpt

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terracarve/pkg/math"
)

// RemoveTrees deletes every tree whose normalized elliptical distance from
// the impact point is at most 1. No falloff and no probability: inside the
// ellipse means gone. Retained trees keep their relative order and payload.
// An empty tree list makes the call a no-op.
func (e *Editor) RemoveTrees(point math.Vec3, radius math.Vec2) {
	if e.terrain == nil {
		return
	}
	trees := e.terrain.Trees()
	if len(trees) == 0 {
		return
	}

	size := e.terrain.Size()
	local := point.Sub(e.terrain.Origin())
	nx := local.X / size.X
	nz := local.Z / size.Z
	rx := radius.X / size.X
	rz := radius.Y / size.Z

	kept := trees[:0]
	for _, tree := range trees {
		dx := (tree.Position[0] - nx) / rx
		dz := (tree.Position[2] - nz) / rz
		if math.Sqrt(dx*dx+dz*dz) > 1 {
			kept = append(kept, tree)
		}
	}
	if len(kept) != len(trees) {
		e.log.Debug("removed trees", zap.Int("count", len(trees)-len(kept)))
		e.terrain.SetTrees(kept)
	}
}
