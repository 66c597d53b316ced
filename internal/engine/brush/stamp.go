package brush

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/Faultbox/terracarve/pkg/math"
)

// Field is a single-channel 2D scalar field readable by bilinear lookup at
// normalized UV coordinates. Values are expected in [0,1].
type Field interface {
	Sample(u, v float32) float32
}

// Stamp is an in-memory grayscale intensity field used by the stamp brush
// variants.
type Stamp struct {
	w, h int
	data []float32
}

// NewStamp builds a stamp from row-major intensity data. The data slice is
// used directly, not copied.
func NewStamp(w, h int, data []float32) *Stamp {
	return &Stamp{w: w, h: h, data: data}
}

// StampFromImage converts an image to a grayscale stamp using Rec.601 luma.
func StampFromImage(img image.Image) *Stamp {
	b := img.Bounds()
	s := &Stamp{
		w:    b.Dx(),
		h:    b.Dy(),
		data: make([]float32, b.Dx()*b.Dy()),
	}
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			luma := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(bl)
			s.data[y*s.w+x] = luma / 65535.0
		}
	}
	return s
}

// LoadStamp reads a PNG file into a stamp.
func LoadStamp(path string) (*Stamp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stamp %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding stamp %s: %w", path, err)
	}
	return StampFromImage(img), nil
}

// Sample returns the bilinearly interpolated intensity at (u, v), with both
// coordinates clamped to [0,1].
func (s *Stamp) Sample(u, v float32) float32 {
	if s.w == 0 || s.h == 0 {
		return 0
	}
	fx := math.Clamp01(u) * float32(s.w-1)
	fy := math.Clamp01(v) * float32(s.h-1)

	x0 := int(fx)
	y0 := int(fy)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > s.w-1 {
		x1 = s.w - 1
	}
	if y1 > s.h-1 {
		y1 = s.h - 1
	}
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	top := math.Lerp(s.data[y0*s.w+x0], s.data[y0*s.w+x1], tx)
	bottom := math.Lerp(s.data[y1*s.w+x0], s.data[y1*s.w+x1], tx)
	return math.Lerp(top, bottom, ty)
}
