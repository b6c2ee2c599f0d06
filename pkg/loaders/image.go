package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-scanline-renderer/pkg/renderer"
)

// LoadTexture loads a PNG or JPEG image into the renderer's pixel-buffer
// abstraction, so a texture and a frame color buffer share one type
func LoadTexture(filename string) (*renderer.Buffer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	buf := renderer.NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			buf.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return buf, nil
}
