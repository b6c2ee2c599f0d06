package renderer

import (
	"testing"

	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
)

// screenTriangle builds a screen-space triangle with a uniform depth
// weight, the way the projection stage would emit one at view depth z
// (clip W is the negated depth, so the weight is -1/z).
func screenTriangle(x1, y1, x2, y2, x3, y3 float64, z float64, intensity float64) geometry.Triangle {
	w := -1 / z
	uv := func(u, v float64) core.TexCoord {
		return core.TexCoord{U: u * w, V: v * w, W: w}
	}
	return geometry.NewTriangle(
		core.NewPoint(x1, y1, 0), core.NewPoint(x2, y2, 0), core.NewPoint(x3, y3, 0),
		uv(0, 0), uv(1, 0), uv(1, 1), intensity)
}

func countPainted(buf *Buffer) int {
	count := 0
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if r, g, b := buf.At(x, y); r != 0 || g != 0 || b != 0 {
				count++
			}
		}
	}
	return count
}

func TestDrawTriangle_FillsInterior(t *testing.T) {
	color := NewBuffer(40, 40)
	depth := NewDepthBuffer(40, 40)

	DrawTriangle(color, depth, screenTriangle(5, 5, 35, 5, 20, 35, 2, 200), nil)

	if r, _, _ := color.At(20, 10); r != 200 {
		t.Errorf("Expected interior pixel shade 200, got %d", r)
	}
	if r, g, b := color.At(2, 2); r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected exterior pixel untouched, got (%d,%d,%d)", r, g, b)
	}
	if countPainted(color) == 0 {
		t.Error("Expected painted pixels")
	}
}

func TestDrawTriangle_IntensityClampedAtPaintTime(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		expected  uint8
	}{
		{"above range", 400, 255},
		{"below range", -60, 0},
		{"in range", 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := NewBuffer(40, 40)
			depth := NewDepthBuffer(40, 40)
			DrawTriangle(color, depth, screenTriangle(5, 5, 35, 5, 20, 35, 2, tt.intensity), nil)

			if r, _, _ := color.At(20, 10); r != tt.expected {
				t.Errorf("Expected shade %d, got %d", tt.expected, r)
			}
		})
	}
}

func TestDrawTriangle_DegenerateZeroHeight(t *testing.T) {
	color := NewBuffer(40, 40)
	depth := NewDepthBuffer(40, 40)

	// All three vertices on one scanline: both half-triangle loops are
	// skipped, nothing painted, no division by zero
	DrawTriangle(color, depth, screenTriangle(5, 10, 20, 10, 35, 10, 2, 200), nil)

	if got := countPainted(color); got != 0 {
		t.Errorf("Expected no painted pixels, got %d", got)
	}
}

func TestDrawTriangle_OutOfBoundsPixelsSkipped(t *testing.T) {
	color := NewBuffer(20, 20)
	depth := NewDepthBuffer(20, 20)

	// Hangs past every buffer edge; out-of-range pixels are skipped
	// silently rather than panicking
	DrawTriangle(color, depth, screenTriangle(-30, -10, 50, -5, 10, 40, 2, 200), nil)

	if countPainted(color) == 0 {
		t.Error("Expected some pixels painted inside the buffer")
	}
}

func TestDrawTriangle_DepthTest(t *testing.T) {
	near := screenTriangle(0, 0, 39, 0, 20, 39, 2, 100)
	far := screenTriangle(0, 0, 39, 0, 20, 39, 10, 250)

	tests := []struct {
		name     string
		first    geometry.Triangle
		second   geometry.Triangle
		expected uint8
	}{
		{"near then far keeps near", near, far, 100},
		{"far then near repaints", far, near, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := NewBuffer(40, 40)
			depth := NewDepthBuffer(40, 40)
			DrawTriangle(color, depth, tt.first, nil)
			DrawTriangle(color, depth, tt.second, nil)

			if r, _, _ := color.At(20, 10); r != tt.expected {
				t.Errorf("Expected shade %d, got %d", tt.expected, r)
			}
		})
	}
}

func TestDrawTriangle_EqualDepthKeepsFirstWriter(t *testing.T) {
	a := screenTriangle(0, 0, 39, 0, 20, 39, 5, 80)
	b := screenTriangle(0, 0, 39, 0, 20, 39, 5, 220)

	color := NewBuffer(40, 40)
	depth := NewDepthBuffer(40, 40)
	DrawTriangle(color, depth, a, nil)
	DrawTriangle(color, depth, b, nil)

	if r, _, _ := color.At(20, 10); r != 80 {
		t.Errorf("Expected first writer to win at equal depth, got %d", r)
	}
}

func TestDrawTriangle_SamplesTexture(t *testing.T) {
	tex := NewBuffer(2, 2)
	tex.Set(0, 0, 255, 0, 0)
	tex.Set(1, 0, 0, 255, 0)
	tex.Set(0, 1, 0, 0, 255)
	tex.Set(1, 1, 255, 255, 0)

	color := NewBuffer(40, 40)
	depth := NewDepthBuffer(40, 40)

	// UV corners (0,0), (1,0), (1,1): near the first corner the sample
	// must come from the texture's top-left texel
	DrawTriangle(color, depth, screenTriangle(0, 0, 39, 0, 39, 39, 2, 0), tex)

	if r, g, b := color.At(4, 2); r != 255 || g != 0 || b != 0 {
		t.Errorf("Expected top-left texel color (255,0,0), got (%d,%d,%d)", r, g, b)
	}
	if r, g, b := color.At(36, 34); r != 255 || g != 255 || b != 0 {
		t.Errorf("Expected bottom-right texel color (255,255,0), got (%d,%d,%d)", r, g, b)
	}
}

func TestBuffer_SampleClampsToEdges(t *testing.T) {
	tex := NewBuffer(2, 2)
	tex.Set(0, 0, 10, 0, 0)
	tex.Set(1, 1, 0, 0, 40)

	tests := []struct {
		name string
		u, v float64
		expR uint8
		expB uint8
	}{
		{"below range", -0.5, -2, 10, 0},
		{"above range", 1.5, 3, 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, b := tex.Sample(tt.u, tt.v)
			if r != tt.expR || b != tt.expB {
				t.Errorf("Expected (r=%d, b=%d), got (r=%d, b=%d)", tt.expR, tt.expB, r, b)
			}
		})
	}
}
