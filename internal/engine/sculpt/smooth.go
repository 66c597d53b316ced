package sculpt

import (
	"github.com/Faultbox/terracarve/internal/engine/raster"
	"github.com/Faultbox/terracarve/pkg/math"
)

// smoothWindow relaxes the interior of a freshly edited height window. Each
// iteration reads from a copy of the window, so cells never see each other's
// updates within one pass. Each interior cell moves toward the unweighted
// average of itself and its 4 direct neighbors by strength.
func smoothWindow(win *raster.Window, iterations int, strength float32) {
	if iterations <= 0 || strength <= 0 {
		return
	}
	for it := 0; it < iterations; it++ {
		src := win.Clone()
		for iz := 1; iz < win.H-1; iz++ {
			for ix := 1; ix < win.W-1; ix++ {
				avg := (src.At(ix, iz) +
					src.At(ix-1, iz) + src.At(ix+1, iz) +
					src.At(ix, iz-1) + src.At(ix, iz+1)) / 5
				win.Set(ix, iz, math.Lerp(src.At(ix, iz), avg, strength))
			}
		}
	}
}
