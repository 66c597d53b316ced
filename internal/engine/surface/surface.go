// Package surface holds the mutable state of one terrain tile: the height
// grid, the blend-weight grid, the per-layer detail density grids and the
// tree list, together with the shared world-space footprint all of them are
// registered against.
package surface

import (
	"github.com/Faultbox/terracarve/internal/engine/raster"
	"github.com/Faultbox/terracarve/pkg/math"
)

// Config describes the footprint and per-layer resolutions of a terrain.
type Config struct {
	Origin math.Vec3 // world position of the (0,0) corner
	Size   math.Vec3 // X/Z extent in world units, Y vertical range

	HeightResolution int // height grid is HeightResolution^2 cells
	AlphaWidth       int
	AlphaHeight      int
	AlphaLayers      int
	DetailWidth      int
	DetailHeight     int
	DetailLayers     int
}

// Terrain is the single mutable surface-state object shared by every edit
// operator. It is constructed explicitly and passed in; there is no lazy
// global binding. Not safe for concurrent use.
type Terrain struct {
	cfg Config

	heights []float32 // row-major, row=Z, normalized [0,1]
	alphas  []float32 // row-major, channel innermost, per-pixel sum 1
	details [][]int   // one row-major grid per detail layer
	trees   []Tree

	// Coarse height mip standing in for the expensive shared recomputation
	// (collision/LOD) that the deferred write path batches until Sync.
	mip     []float32
	mipRes  int
	pending bool
}

// New allocates a terrain with all heights zero, the first blend layer fully
// opaque and all detail densities zero.
func New(cfg Config) *Terrain {
	t := &Terrain{
		cfg:     cfg,
		heights: make([]float32, cfg.HeightResolution*cfg.HeightResolution),
		alphas:  make([]float32, cfg.AlphaWidth*cfg.AlphaHeight*cfg.AlphaLayers),
		details: make([][]int, cfg.DetailLayers),
	}
	for i := range t.details {
		t.details[i] = make([]int, cfg.DetailWidth*cfg.DetailHeight)
	}
	// A valid blend grid sums to 1 per pixel from the start.
	if cfg.AlphaLayers > 0 {
		for i := 0; i < len(t.alphas); i += cfg.AlphaLayers {
			t.alphas[i] = 1
		}
	}
	t.mipRes = cfg.HeightResolution / 2
	if t.mipRes < 1 {
		t.mipRes = 1
	}
	t.mip = make([]float32, t.mipRes*t.mipRes)
	t.rebuildMip()
	return t
}

// Origin returns the world position of the terrain's (0,0) corner.
func (t *Terrain) Origin() math.Vec3 { return t.cfg.Origin }

// Size returns the world-space footprint (X/Z) and height range (Y).
func (t *Terrain) Size() math.Vec3 { return t.cfg.Size }

// HeightResolution returns the height grid resolution per axis.
func (t *Terrain) HeightResolution() int { return t.cfg.HeightResolution }

// AlphaSize returns the blend-weight grid dimensions and layer count.
func (t *Terrain) AlphaSize() (w, h, layers int) {
	return t.cfg.AlphaWidth, t.cfg.AlphaHeight, t.cfg.AlphaLayers
}

// DetailSize returns the detail density grid dimensions.
func (t *Terrain) DetailSize() (w, h int) {
	return t.cfg.DetailWidth, t.cfg.DetailHeight
}

// DetailLayers returns the number of detail density layers.
func (t *Terrain) DetailLayers() int { return t.cfg.DetailLayers }

// Heights copies a w*h window of the height grid starting at (x, z).
func (t *Terrain) Heights(x, z, w, h int) *raster.Window {
	win := raster.NewWindow(x, z, w, h)
	res := t.cfg.HeightResolution
	for iz := 0; iz < h; iz++ {
		row := (z + iz) * res
		copy(win.Data[iz*w:(iz+1)*w], t.heights[row+x:row+x+w])
	}
	return win
}

// SetHeights writes a window back into the height grid and immediately
// rebuilds derived state.
func (t *Terrain) SetHeights(win *raster.Window) {
	t.writeHeights(win)
	t.rebuildMip()
}

// SetHeightsDelayed writes a window back into the height grid but defers the
// derived-state rebuild until the next Sync. Many delayed writes may pile up
// behind a single pending flag; that batching is the point.
func (t *Terrain) SetHeightsDelayed(win *raster.Window) {
	t.writeHeights(win)
	t.pending = true
}

func (t *Terrain) writeHeights(win *raster.Window) {
	res := t.cfg.HeightResolution
	for iz := 0; iz < win.H; iz++ {
		row := (win.Z + iz) * res
		copy(t.heights[row+win.X:row+win.X+win.W], win.Data[iz*win.W:(iz+1)*win.W])
	}
}

// Sync rebuilds derived height state if any delayed writes are pending.
// Callers must invoke it once per stroke before dependent systems read the
// terrain.
func (t *Terrain) Sync() {
	if !t.pending {
		return
	}
	t.rebuildMip()
	t.pending = false
}

// Pending reports whether delayed height writes await a Sync.
func (t *Terrain) Pending() bool { return t.pending }

// Alphamaps copies a w*h window of the blend-weight grid starting at (x, z).
func (t *Terrain) Alphamaps(x, z, w, h int) *raster.LayerWindow {
	layers := t.cfg.AlphaLayers
	win := raster.NewLayerWindow(x, z, w, h, layers)
	stride := t.cfg.AlphaWidth * layers
	for iz := 0; iz < h; iz++ {
		src := (z+iz)*stride + x*layers
		copy(win.Data[iz*w*layers:(iz+1)*w*layers], t.alphas[src:src+w*layers])
	}
	return win
}

// SetAlphamaps writes a blend-weight window back. Blend writes are never
// deferred.
func (t *Terrain) SetAlphamaps(win *raster.LayerWindow) {
	layers := t.cfg.AlphaLayers
	stride := t.cfg.AlphaWidth * layers
	for iz := 0; iz < win.H; iz++ {
		dst := (win.Z+iz)*stride + win.X*layers
		copy(t.alphas[dst:dst+win.W*layers], win.Data[iz*win.W*layers:(iz+1)*win.W*layers])
	}
}

// DetailLayer copies a w*h window of one detail density grid.
func (t *Terrain) DetailLayer(layer, x, z, w, h int) *raster.IntWindow {
	win := raster.NewIntWindow(x, z, w, h)
	grid := t.details[layer]
	for iz := 0; iz < h; iz++ {
		row := (z + iz) * t.cfg.DetailWidth
		copy(win.Data[iz*w:(iz+1)*w], grid[row+x:row+x+w])
	}
	return win
}

// SetDetailLayer writes a density window back. Density writes are never
// deferred.
func (t *Terrain) SetDetailLayer(layer int, win *raster.IntWindow) {
	grid := t.details[layer]
	for iz := 0; iz < win.H; iz++ {
		row := (win.Z + iz) * t.cfg.DetailWidth
		copy(grid[row+win.X:row+win.X+win.W], win.Data[iz*win.W:(iz+1)*win.W])
	}
}

// Trees returns a copy of the tree list.
func (t *Terrain) Trees() []Tree {
	out := make([]Tree, len(t.trees))
	copy(out, t.trees)
	return out
}

// SetTrees replaces the tree list wholesale.
func (t *Terrain) SetTrees(trees []Tree) {
	t.trees = make([]Tree, len(trees))
	copy(t.trees, trees)
}

// HeightAt returns the bilinearly interpolated normalized height at a world
// position, with the sample position clamped to the footprint.
func (t *Terrain) HeightAt(worldX, worldZ float32) float32 {
	res := t.cfg.HeightResolution
	fx := math.Clamp01((worldX-t.cfg.Origin.X)/t.cfg.Size.X) * float32(res-1)
	fz := math.Clamp01((worldZ-t.cfg.Origin.Z)/t.cfg.Size.Z) * float32(res-1)

	x0 := int(fx)
	z0 := int(fz)
	x1 := x0 + 1
	z1 := z0 + 1
	if x1 > res-1 {
		x1 = res - 1
	}
	if z1 > res-1 {
		z1 = res - 1
	}
	tx := fx - float32(x0)
	tz := fz - float32(z0)

	south := math.Lerp(t.heights[z0*res+x0], t.heights[z0*res+x1], tx)
	north := math.Lerp(t.heights[z1*res+x0], t.heights[z1*res+x1], tx)
	return math.Lerp(south, north, tz)
}

// MipAt returns the derived coarse height at a mip cell. Exposed so callers
// (and tests) can observe whether derived state has caught up with delayed
// writes.
func (t *Terrain) MipAt(mx, mz int) float32 {
	return t.mip[mz*t.mipRes+mx]
}

// MipResolution returns the coarse mip resolution per axis.
func (t *Terrain) MipResolution() int { return t.mipRes }

// rebuildMip averages each 2x2 block of the height grid into one mip cell.
func (t *Terrain) rebuildMip() {
	res := t.cfg.HeightResolution
	for mz := 0; mz < t.mipRes; mz++ {
		for mx := 0; mx < t.mipRes; mx++ {
			x := mx * 2
			z := mz * 2
			x1 := x + 1
			z1 := z + 1
			if x1 > res-1 {
				x1 = res - 1
			}
			if z1 > res-1 {
				z1 = res - 1
			}
			sum := t.heights[z*res+x] + t.heights[z*res+x1] +
				t.heights[z1*res+x] + t.heights[z1*res+x1]
			t.mip[mz*t.mipRes+mx] = sum / 4
		}
	}
}
