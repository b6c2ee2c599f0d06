// Command viewer opens a window, renders the scene on the CPU every frame,
// and blits the color buffer to the screen. Keyboard input drives a
// first-person fly camera.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-scanline-renderer/pkg/renderer"
	"github.com/df07/go-scanline-renderer/pkg/scene"
)

const (
	width     = 640
	height    = 480
	moveSpeed = 4.0 // units per second
	turnSpeed = 2.0 // radians per second
)

type game struct {
	scene    *scene.Scene
	renderer *renderer.Renderer
	color    *renderer.Buffer
	depth    *renderer.DepthBuffer
	frame    *ebiten.Image
}

func newGame(s *scene.Scene) *game {
	return &game{
		scene:    s,
		renderer: renderer.NewRenderer(renderer.DefaultConfig(width, height)),
		color:    renderer.NewBuffer(width, height),
		depth:    renderer.NewDepthBuffer(width, height),
		frame:    ebiten.NewImage(width, height),
	}
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.handleInput(dt)
	g.scene.Tick(dt)
	return nil
}

// handleInput translates key state into camera position and orientation
// deltas: WASD moves in the horizontal plane relative to yaw, Space and
// Shift move vertically, arrow keys turn.
func (g *game) handleInput(dt float64) {
	cam := g.scene.Camera
	forward := cam.Forward().Multiply(moveSpeed * dt)
	right := cam.Right().Multiply(moveSpeed * dt)

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Position = cam.Position.AddVec3(forward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Position = cam.Position.AddVec3(forward.Negate())
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		cam.Position = cam.Position.AddVec3(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		cam.Position = cam.Position.AddVec3(right.Negate())
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		cam.Position.Y += moveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		cam.Position.Y -= moveSpeed * dt
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Yaw -= turnSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Yaw += turnSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Pitch -= turnSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Pitch += turnSpeed * dt
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.color.Clear(0, 0, 0)
	g.depth.Clear()
	g.scene.Render(g.renderer, g.color, g.depth)

	g.frame.WritePixels(g.color.Pix)
	screen.DrawImage(g.frame, nil)

	ebiten.SetWindowTitle(fmt.Sprintf("Scanline Renderer | FPS: %.0f", ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return width, height
}

func main() {
	sceneType := flag.String("scene", "cube", "Scene: 'cube', 'quad', or 'obj:<path>[:<texture>]'")
	flag.Parse()

	s, err := scene.Create(*sceneType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(width*2, height*2)
	ebiten.SetWindowTitle("Scanline Renderer")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newGame(s)); err != nil {
		log.Fatal(err)
	}
}
