package renderer

import (
	"image"
	"math"
)

// Buffer is a width x height RGBA pixel buffer. It serves both as the frame
// color buffer the pipeline paints into and as the texture abstraction the
// rasterizer samples from. Pixels are row-major, 4 bytes per pixel.
//
// The frame loop owns its buffers; the pipeline borrows them mutably for the
// duration of one draw call and never retains them.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer creates a black, fully opaque buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
	b.Clear(0, 0, 0)
	return b
}

// Clear fills the buffer with a solid color
func (b *Buffer) Clear(r, g, bl uint8) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = r
		b.Pix[i+1] = g
		b.Pix[i+2] = bl
		b.Pix[i+3] = 0xFF
	}
}

// Set writes one pixel. Callers are responsible for bounds.
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := (y*b.Width + x) * 4
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = 0xFF
}

// At reads one pixel. Callers are responsible for bounds.
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := (y*b.Width + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Sample reads the pixel nearest to normalized coordinates (u, v), clamping
// to the buffer edges. v grows downward, matching image row order.
func (b *Buffer) Sample(u, v float64) (r, g, bl uint8) {
	x := int(u * float64(b.Width))
	y := int(v * float64(b.Height))
	if x < 0 {
		x = 0
	} else if x >= b.Width {
		x = b.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= b.Height {
		y = b.Height - 1
	}
	return b.At(x, y)
}

// RGBA wraps the buffer in an image.RGBA sharing the same pixel storage
func (b *Buffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// DepthBuffer holds one depth weight per pixel. The stored value is the
// clip-space depth reciprocal 1/W, which is negative for geometry in front
// of the camera (see core.Perspective). A pixel is repainted only when the
// incoming reciprocal is strictly smaller than the stored one; with the
// negative sign that means nearer geometry wins, and ties keep the first
// writer. Cleared to +Inf so any real fragment beats an empty pixel.
type DepthBuffer struct {
	Width  int
	Height int
	Data   []float64
}

// NewDepthBuffer creates a depth buffer cleared to +Inf
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
	d.Clear()
	return d
}

// Clear resets every depth weight to +Inf
func (d *DepthBuffer) Clear() {
	for i := range d.Data {
		d.Data[i] = math.Inf(1)
	}
}
