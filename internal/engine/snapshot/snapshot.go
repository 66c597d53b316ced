// Package snapshot captures and restores full terrain state for single-level
// undo. A snapshot is built once, held by the caller, and applied at most
// once per undo; the engine keeps no history of its own.
package snapshot

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terracarve/internal/engine/raster"
	"github.com/Faultbox/terracarve/internal/engine/surface"
)

// Layers selects which raster layers a capture or restore touches. The tree
// list is always captured and always restored.
type Layers struct {
	Heights bool
	Blend   bool
	Details bool
}

// Snapshot is an immutable-once-built deep copy of terrain state together
// with the dimensions it was recorded at.
type Snapshot struct {
	heights   *raster.Window
	heightRes int

	alphas      *raster.LayerWindow
	alphaW      int
	alphaH      int
	alphaLayers int

	details      []*raster.IntWindow
	detailW      int
	detailH      int
	detailLayers int

	trees []surface.Tree
}

// Capture reads the requested layers of the terrain wholesale at their
// native resolutions. The full tree list is always included.
func Capture(t *surface.Terrain, l Layers) *Snapshot {
	s := &Snapshot{}
	if l.Heights {
		res := t.HeightResolution()
		s.heightRes = res
		s.heights = t.Heights(0, 0, res, res)
	}
	if l.Blend {
		w, h, layers := t.AlphaSize()
		s.alphaW, s.alphaH, s.alphaLayers = w, h, layers
		s.alphas = t.Alphamaps(0, 0, w, h)
	}
	if l.Details {
		w, h := t.DetailSize()
		s.detailW, s.detailH = w, h
		s.detailLayers = t.DetailLayers()
		s.details = make([]*raster.IntWindow, s.detailLayers)
		for i := 0; i < s.detailLayers; i++ {
			s.details[i] = t.DetailLayer(i, 0, 0, w, h)
		}
	}
	s.trees = t.Trees()
	return s
}

// Apply overwrites the requested layers of the terrain with the snapshot's
// copies. A layer whose recorded dimensions no longer match the terrain is
// skipped with a warning; the remaining layers still restore. Trees are
// restored unconditionally. Height writes go through the delayed path and
// Apply flushes exactly once at the end, so dependent systems observe the
// reverted state immediately.
func (s *Snapshot) Apply(t *surface.Terrain, l Layers, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	if l.Heights && s.heights != nil {
		if res := t.HeightResolution(); res != s.heightRes {
			log.Warn("snapshot height resolution mismatch, skipping heights",
				zap.Int("snapshot", s.heightRes),
				zap.Int("terrain", res))
		} else {
			t.SetHeightsDelayed(s.heights)
		}
	}

	if l.Blend && s.alphas != nil {
		w, h, layers := t.AlphaSize()
		if w != s.alphaW || h != s.alphaH || layers != s.alphaLayers {
			log.Warn("snapshot blend dimensions mismatch, skipping blend weights",
				zap.Int("snapshotWidth", s.alphaW),
				zap.Int("snapshotHeight", s.alphaH),
				zap.Int("snapshotLayers", s.alphaLayers),
				zap.Int("terrainWidth", w),
				zap.Int("terrainHeight", h),
				zap.Int("terrainLayers", layers))
		} else {
			t.SetAlphamaps(s.alphas)
		}
	}

	if l.Details && s.details != nil {
		w, h := t.DetailSize()
		if w != s.detailW || h != s.detailH || t.DetailLayers() != s.detailLayers {
			log.Warn("snapshot detail dimensions mismatch, skipping detail layers",
				zap.Int("snapshotWidth", s.detailW),
				zap.Int("snapshotHeight", s.detailH),
				zap.Int("snapshotLayers", s.detailLayers),
				zap.Int("terrainWidth", w),
				zap.Int("terrainHeight", h),
				zap.Int("terrainLayers", t.DetailLayers()))
		} else {
			for i, win := range s.details {
				t.SetDetailLayer(i, win)
			}
		}
	}

	t.SetTrees(s.trees)
	t.Sync()
}
