package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-scanline-renderer/pkg/renderer"
	"github.com/df07/go-scanline-renderer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cube", "Scene: 'cube', 'quad', or 'obj:<path>[:<texture>]'")
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 600, "Output height in pixels")
	output := flag.String("output", "", "Output PNG path (default output/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Scanline Renderer")
		fmt.Println("Usage: renderer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cube            - Flat-shaded unit cube")
		fmt.Println("  quad            - Checkerboard-textured quad")
		fmt.Println("  obj:<path>      - Mesh loaded from an OBJ file")
		fmt.Println("  obj:<path>:<im> - OBJ mesh with a PNG/JPEG texture")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d '%s' scene...\n", *width, *height, *sceneType)
	start := time.Now()

	r := renderer.NewRenderer(renderer.DefaultConfig(*width, *height))
	color := renderer.NewBuffer(*width, *height)
	depth := renderer.NewDepthBuffer(*width, *height)
	selectedScene.Render(r, color, depth)

	fmt.Printf("Rendered in %v\n", time.Since(start))

	path := *output
	if path == "" {
		path = filepath.Join("output", fmt.Sprintf("render_%d.png", time.Now().Unix()))
	}
	if err := savePNG(path, color); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", path)
}

// createScene builds a built-in scene by name, or loads one from an OBJ
// path given as "obj:<path>" or "obj:<path>:<texture>"
func createScene(name string) (*scene.Scene, error) {
	return scene.Create(name)
}

func savePNG(path string, buf *renderer.Buffer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, buf.RGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
