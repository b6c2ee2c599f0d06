package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
)

func renderMesh(mesh *geometry.Mesh, camPos core.Vec4, tex *Buffer, size int) *Buffer {
	r := NewRenderer(DefaultConfig(size, size))
	color := NewBuffer(size, size)
	depth := NewDepthBuffer(size, size)

	cam := NewCamera(camPos)
	r.DrawMesh(mesh, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0),
		cam.ViewMatrix(), cam.Position, core.NewVec3(0, 0, -1), tex, color, depth)
	return color
}

// A unit cube at the origin seen head-on from (0,0,-5) with a 90 degree
// FOV: only the camera-facing side survives culling, its silhouette covers
// roughly pixels 44..56 of a 100x100 buffer, and everything outside stays
// at the cleared background.
func TestDrawMesh_CubeScenario(t *testing.T) {
	color := renderMesh(geometry.NewCube(), core.NewPoint(0, 0, -5), nil, 100)

	if r, g, b := color.At(50, 50); r == 0 && g == 0 && b == 0 {
		t.Error("Expected cube face painted at buffer center")
	}

	// Face normal (0,0,-1) against light (0,0,-1): full intensity, white
	if r, _, _ := color.At(50, 50); r != 255 {
		t.Errorf("Expected full lighting intensity 255, got %d", r)
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			r, g, b := color.At(x, y)
			painted := r != 0 || g != 0 || b != 0
			inSilhouette := x >= 43 && x <= 57 && y >= 43 && y <= 57
			if painted && !inSilhouette {
				t.Fatalf("Pixel (%d,%d) painted outside the cube silhouette", x, y)
			}
		}
	}
}

func TestDrawMesh_BackfaceCullingSymmetric(t *testing.T) {
	vertices := []geometry.Vertex{
		core.NewPoint(-1, -1, 0),
		core.NewPoint(-1, 1, 0),
		core.NewPoint(1, 1, 0),
	}
	uv := [3]core.TexCoord{
		core.NewTexCoord(0, 0), core.NewTexCoord(0, 1), core.NewTexCoord(1, 1),
	}
	facing := geometry.NewMesh(vertices, []geometry.Face{{V: [3]int{0, 1, 2}, UV: uv}})
	reversed := geometry.NewMesh(vertices, []geometry.Face{{V: [3]int{2, 1, 0}, UV: uv}})

	camPos := core.NewPoint(0, 0, -5)
	if countPainted(renderMesh(facing, camPos, nil, 100)) == 0 {
		t.Error("Expected front-facing triangle to rasterize")
	}
	if got := countPainted(renderMesh(reversed, camPos, nil, 100)); got != 0 {
		t.Errorf("Expected reversed winding to be culled, got %d painted pixels", got)
	}
}

// Rendering the same opaque scene twice into freshly cleared buffers is
// bit-identical: nothing in the pipeline depends on accumulated state.
func TestDrawMesh_DepthTestIdempotent(t *testing.T) {
	first := renderMesh(geometry.NewCube(), core.NewPoint(0.3, 0.4, -4), nil, 64)
	second := renderMesh(geometry.NewCube(), core.NewPoint(0.3, 0.4, -4), nil, 64)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected bit-identical output across renders")
	}
}

// Occlusion must come from the depth buffer, not draw order: a near quad
// wins the overlap no matter which mesh is drawn first.
func TestDrawMesh_OcclusionIndependentOfDrawOrder(t *testing.T) {
	red := NewBuffer(1, 1)
	red.Set(0, 0, 255, 0, 0)
	blue := NewBuffer(1, 1)
	blue.Set(0, 0, 0, 0, 255)

	nearQuad := geometry.NewQuad(2) // stays at z=0
	farQuad := geometry.NewQuad(2)

	draw := func(firstMesh, secondMesh *geometry.Mesh, firstTex, secondTex *Buffer,
		firstZ, secondZ float64) *Buffer {
		r := NewRenderer(DefaultConfig(64, 64))
		color := NewBuffer(64, 64)
		depth := NewDepthBuffer(64, 64)
		cam := NewCamera(core.NewPoint(0, 0, -3))
		view := cam.ViewMatrix()
		light := core.NewVec3(0, 0, -1)

		r.DrawMesh(firstMesh, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, firstZ),
			view, cam.Position, light, firstTex, color, depth)
		r.DrawMesh(secondMesh, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, secondZ),
			view, cam.Position, light, secondTex, color, depth)
		return color
	}

	nearFirst := draw(nearQuad, farQuad, red, blue, 0, 4)
	farFirst := draw(farQuad, nearQuad, blue, red, 4, 0)

	for name, buf := range map[string]*Buffer{"near first": nearFirst, "far first": farFirst} {
		if r, _, b := buf.At(32, 32); r != 255 || b != 0 {
			t.Errorf("%s: expected near quad color at center, got r=%d b=%d", name, r, b)
		}
	}
}

// A checkerboard-textured quad sampled across its two triangles: the color
// along a scanline changes only at checker cell boundaries, never at the
// shared diagonal.
func TestDrawMesh_CheckerQuadSeamFree(t *testing.T) {
	tex := NewBuffer(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x/8+y/8)%2 == 0 {
				tex.Set(x, y, 255, 255, 255)
			} else {
				tex.Set(x, y, 80, 80, 80)
			}
		}
	}

	r := NewRenderer(DefaultConfig(100, 100))
	color := NewBuffer(100, 100)
	depth := NewDepthBuffer(100, 100)
	cam := NewCamera(core.NewPoint(0, 0, 0))

	r.DrawMesh(geometry.NewQuad(2), core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 3),
		cam.ViewMatrix(), cam.Position, core.NewVec3(0, 0, -1), tex, color, depth)

	// Row 46 crosses the quad's shared diagonal around x=46 and a checker
	// cell boundary near x=50. Every pixel must be one of the two checker
	// colors, and the color may change exactly once.
	transitions := 0
	prev, _, _ := color.At(36, 46)
	for x := 36; x <= 64; x++ {
		r8, g8, b8 := color.At(x, 46)
		if r8 != g8 || g8 != b8 || (r8 != 255 && r8 != 80) {
			t.Fatalf("Pixel (%d,46) is not a checker color: (%d,%d,%d)", x, r8, g8, b8)
		}
		if r8 != prev {
			transitions++
			prev = r8
		}
	}
	if transitions != 1 {
		t.Errorf("Expected exactly 1 color transition along the row, got %d", transitions)
	}
}
