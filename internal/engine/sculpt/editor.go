// Package sculpt implements the runtime terrain brushes: height raising,
// blend-weight painting, detail density painting and tree removal, plus the
// stroke protocol that batches height writes behind a single flush.
package sculpt

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terracarve/internal/engine/raster"
	"github.com/Faultbox/terracarve/internal/engine/snapshot"
	"github.com/Faultbox/terracarve/internal/engine/surface"
)

// Editor applies brushes to one terrain. It is bound to its surface-state
// object at construction and is not safe for concurrent use; callers
// serialize edits externally (one per simulation tick).
type Editor struct {
	terrain *surface.Terrain
	log     *zap.Logger

	smoothIterations int
	smoothStrength   float32
	deferred         bool
	inStroke         bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for diagnostics. Defaults to a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithSmoothing enables the post-edit height smoothing pass. Zero iterations
// or zero strength disables it.
func WithSmoothing(iterations int, strength float32) Option {
	return func(e *Editor) {
		e.smoothIterations = iterations
		e.smoothStrength = strength
	}
}

// WithDeferredSync controls whether height writes inside a stroke take the
// delayed path. Enabled by default.
func WithDeferredSync(enabled bool) Option {
	return func(e *Editor) {
		e.deferred = enabled
	}
}

// New creates an editor for the given terrain.
func New(terrain *surface.Terrain, opts ...Option) *Editor {
	e := &Editor{
		terrain:  terrain,
		log:      zap.NewNop(),
		deferred: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BeginStroke opens a logical stroke: until EndStroke, height writes defer
// the expensive dependent recomputation. Nested strokes collapse into one.
func (e *Editor) BeginStroke() {
	e.inStroke = true
}

// EndStroke closes the stroke and flushes deferred height state exactly
// once. Dependent systems may only read the terrain after this returns.
func (e *Editor) EndStroke() {
	e.inStroke = false
	if e.terrain != nil {
		e.terrain.Sync()
	}
}

// writeHeights routes an edited height window through the delayed path when
// a deferred stroke is open, immediately otherwise.
func (e *Editor) writeHeights(win *raster.Window) {
	if e.deferred && e.inStroke {
		e.terrain.SetHeightsDelayed(win)
		return
	}
	e.terrain.SetHeights(win)
}

// Capture snapshots the requested terrain layers (plus, always, the trees)
// for a later undo.
func (e *Editor) Capture(heights, blend, details bool) *snapshot.Snapshot {
	if e.terrain == nil {
		return nil
	}
	return snapshot.Capture(e.terrain, snapshot.Layers{Heights: heights, Blend: blend, Details: details})
}

// Restore applies a caller-held snapshot back onto the terrain. Layers whose
// recorded dimensions no longer match are skipped with a warning.
func (e *Editor) Restore(s *snapshot.Snapshot, heights, blend, details bool) {
	if e.terrain == nil || s == nil {
		return
	}
	s.Apply(e.terrain, snapshot.Layers{Heights: heights, Blend: blend, Details: details}, e.log)
}
