// Package main is a sample controller for the terracarve brush engine: it
// builds a terrain from config, runs a scripted editing session and writes a
// heightmap preview. Ray casting, input and rendering live in the host
// runtime; this tool only drives the engine.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terracarve/internal/config"
	"github.com/Faultbox/terracarve/internal/engine/brush"
	"github.com/Faultbox/terracarve/internal/engine/sculpt"
	"github.com/Faultbox/terracarve/internal/engine/surface"
	"github.com/Faultbox/terracarve/internal/logger"
	"github.com/Faultbox/terracarve/pkg/math"
)

var flagPreview = flag.String("preview", "heightmap.png", "Heightmap preview output path")

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.L()
	log.Info("=== terracarve sculpt ===")

	terrain := surface.New(surface.Config{
		Size:             math.Vec3{X: cfg.Terrain.SizeX, Y: cfg.Terrain.SizeY, Z: cfg.Terrain.SizeZ},
		HeightResolution: cfg.Terrain.HeightResolution,
		AlphaWidth:       cfg.Terrain.AlphaResolution,
		AlphaHeight:      cfg.Terrain.AlphaResolution,
		AlphaLayers:      cfg.Terrain.AlphaLayers,
		DetailWidth:      cfg.Terrain.DetailResolution,
		DetailHeight:     cfg.Terrain.DetailResolution,
		DetailLayers:     cfg.Terrain.DetailLayers,
	})

	editor := sculpt.New(terrain,
		sculpt.WithLogger(log),
		sculpt.WithSmoothing(cfg.Sculpt.SmoothIterations, cfg.Sculpt.SmoothStrength),
		sculpt.WithDeferredSync(cfg.Sculpt.DeferredSync),
	)

	if err := runSession(cfg, terrain, editor, log); err != nil {
		log.Error("session failed", zap.Error(err))
		os.Exit(1)
	}

	if err := writePreview(terrain, *flagPreview); err != nil {
		log.Error("writing preview", zap.Error(err))
		os.Exit(1)
	}
	log.Info("preview written", zap.String("path", *flagPreview))
}

// runSession performs a scripted editing session: a sculpting stroke, some
// texture and vegetation painting, a tree cull, and an undo demonstration.
func runSession(cfg *config.Config, terrain *surface.Terrain, editor *sculpt.Editor, log *zap.Logger) error {
	size := terrain.Size()
	center := math.Vec3{X: size.X / 2, Z: size.Z / 2}

	raise := presetBrush(cfg, "raise")
	spike := presetBrush(cfg, "spike")

	// One logical stroke: drag a ridge across the middle of the terrain.
	// Dependent systems only observe consistent heights after EndStroke.
	editor.BeginStroke()
	steps := 24
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		p := math.Vec3{X: size.X * (0.2 + 0.6*t), Z: size.Z / 2}
		editor.RaiseHeight(p, math.Vec2{X: raise.RadiusX, Y: raise.RadiusZ}, raise.Amount)
	}
	editor.EndStroke()
	log.Info("ridge stroke applied",
		zap.Int("edits", steps+1),
		zap.Float32("peak", terrain.HeightAt(center.X, center.Z)))

	// Optional stamp brush from config.
	if spike.Stamp != "" {
		stamp, err := brush.LoadStamp(spike.Stamp)
		if err != nil {
			return err
		}
		editor.BeginStroke()
		editor.RaiseHeightStamp(center, math.Vec2{X: spike.RadiusX, Y: spike.RadiusZ}, spike.Amount, stamp, spike.Rotation)
		editor.EndStroke()
		log.Info("stamp applied", zap.String("stamp", spike.Stamp))
	}

	// Dress the ridge: rocky texture on top, grass density around it.
	editor.PaintBlend(center, math.Vec2{X: size.X * 0.2, Y: size.Z * 0.1}, 1, 0.6)
	editor.PaintDetail(center, math.Vec2{X: size.X * 0.25, Y: size.Z * 0.15}, 0, 8, 15)

	// Scatter a few trees, then cull the ones buried by the ridge.
	trees := make([]surface.Tree, 0, 12)
	for i := 0; i < 12; i++ {
		t := float32(i) / 12
		trees = append(trees, surface.Tree{
			Position:    [3]float32{t, 0, 0.45 + 0.1*t},
			Prototype:   i % 3,
			WidthScale:  1,
			HeightScale: 1,
		})
	}
	terrain.SetTrees(trees)
	before := len(terrain.Trees())
	editor.RemoveTrees(center, math.Vec2{X: size.X * 0.15, Y: size.Z * 0.1})
	log.Info("trees culled", zap.Int("before", before), zap.Int("after", len(terrain.Trees())))

	// Snapshot, carve a crater, then undo it.
	snap := editor.Capture(true, true, true)
	peakBefore := terrain.HeightAt(center.X, center.Z)

	editor.BeginStroke()
	editor.RaiseHeight(center, math.Vec2{X: spike.RadiusX * 4, Y: spike.RadiusZ * 4}, -0.5)
	editor.EndStroke()
	log.Info("crater carved", zap.Float32("peak", terrain.HeightAt(center.X, center.Z)))

	editor.Restore(snap, true, true, true)
	log.Info("undo restored surface",
		zap.Float32("peakBefore", peakBefore),
		zap.Float32("peakAfter", terrain.HeightAt(center.X, center.Z)))

	return nil
}

// presetBrush returns the named brush preset, or a small default.
func presetBrush(cfg *config.Config, name string) config.BrushPreset {
	for _, b := range cfg.Sculpt.Brushes {
		if b.Name == name {
			return b
		}
	}
	return config.BrushPreset{Name: name, RadiusX: 10, RadiusZ: 10, Amount: 0.02}
}

// writePreview renders the height grid to a grayscale PNG.
func writePreview(terrain *surface.Terrain, path string) error {
	res := terrain.HeightResolution()
	win := terrain.Heights(0, 0, res, res)

	img := image.NewGray(image.Rect(0, 0, res, res))
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			img.SetGray(x, z, color.Gray{Y: uint8(math.Clamp01(win.At(x, z)) * 255)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}
