// Package raster provides bounded rectangular windows over the terrain's
// raster layers. All windows are flat row-major slices with row = Z and
// column = X; layered windows add an innermost channel axis (channel = layer).
package raster

// Window is a rectangular float32 window into a 2D scalar grid.
// X, Z is the top-left grid index the window was read from.
type Window struct {
	X, Z int
	W, H int
	Data []float32
}

// NewWindow allocates a zeroed window of w*h cells at grid position (x, z).
func NewWindow(x, z, w, h int) *Window {
	return &Window{X: x, Z: z, W: w, H: h, Data: make([]float32, w*h)}
}

// At returns the value at window-local column ix, row iz.
func (w *Window) At(ix, iz int) float32 {
	return w.Data[iz*w.W+ix]
}

// Set stores v at window-local column ix, row iz.
func (w *Window) Set(ix, iz int, v float32) {
	w.Data[iz*w.W+ix] = v
}

// Clone returns an independent deep copy.
func (w *Window) Clone() *Window {
	c := &Window{X: w.X, Z: w.Z, W: w.W, H: w.H, Data: make([]float32, len(w.Data))}
	copy(c.Data, w.Data)
	return c
}

// SameShape reports whether o covers the same extent as w.
func (w *Window) SameShape(o *Window) bool {
	return o != nil && w.W == o.W && w.H == o.H
}

// LayerWindow is a rectangular float32 window into a layered grid, with
// Layers channels per pixel.
type LayerWindow struct {
	X, Z   int
	W, H   int
	Layers int
	Data   []float32
}

// NewLayerWindow allocates a zeroed layered window of w*h*layers cells.
func NewLayerWindow(x, z, w, h, layers int) *LayerWindow {
	return &LayerWindow{X: x, Z: z, W: w, H: h, Layers: layers, Data: make([]float32, w*h*layers)}
}

// At returns the value of channel layer at window-local column ix, row iz.
func (w *LayerWindow) At(ix, iz, layer int) float32 {
	return w.Data[(iz*w.W+ix)*w.Layers+layer]
}

// Set stores v in channel layer at window-local column ix, row iz.
func (w *LayerWindow) Set(ix, iz, layer int, v float32) {
	w.Data[(iz*w.W+ix)*w.Layers+layer] = v
}

// Clone returns an independent deep copy.
func (w *LayerWindow) Clone() *LayerWindow {
	c := &LayerWindow{X: w.X, Z: w.Z, W: w.W, H: w.H, Layers: w.Layers, Data: make([]float32, len(w.Data))}
	copy(c.Data, w.Data)
	return c
}

// SameShape reports whether o covers the same extent and layer count as w.
func (w *LayerWindow) SameShape(o *LayerWindow) bool {
	return o != nil && w.W == o.W && w.H == o.H && w.Layers == o.Layers
}

// IntWindow is a rectangular int window into a 2D count grid (detail
// densities).
type IntWindow struct {
	X, Z int
	W, H int
	Data []int
}

// NewIntWindow allocates a zeroed int window of w*h cells.
func NewIntWindow(x, z, w, h int) *IntWindow {
	return &IntWindow{X: x, Z: z, W: w, H: h, Data: make([]int, w*h)}
}

// At returns the value at window-local column ix, row iz.
func (w *IntWindow) At(ix, iz int) int {
	return w.Data[iz*w.W+ix]
}

// Set stores v at window-local column ix, row iz.
func (w *IntWindow) Set(ix, iz int, v int) {
	w.Data[iz*w.W+ix] = v
}

// Clone returns an independent deep copy.
func (w *IntWindow) Clone() *IntWindow {
	c := &IntWindow{X: w.X, Z: w.Z, W: w.W, H: w.H, Data: make([]int, len(w.Data))}
	copy(c.Data, w.Data)
	return c
}

// SameShape reports whether o covers the same extent as w.
func (w *IntWindow) SameShape(o *IntWindow) bool {
	return o != nil && w.W == o.W && w.H == o.H
}
