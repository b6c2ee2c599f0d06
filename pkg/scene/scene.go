package scene

import (
	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
	"github.com/df07/go-scanline-renderer/pkg/renderer"
)

// Object is one renderable thing: a mesh, its rigid transform, and an
// optional texture. There is no scene graph; every object carries exactly
// one rotation+translation pair.
type Object struct {
	Mesh     *geometry.Mesh
	Position core.Vec3
	Rotation core.Vec3
	Texture  *renderer.Buffer // nil means flat-shaded
	Spin     core.Vec3        // per-second rotation applied by Tick
}

// Scene contains everything needed to render a frame: objects, a camera,
// and the directional light
type Scene struct {
	Objects []*Object
	Camera  *renderer.Camera
	Light   core.Vec3 // unit vector toward the light
}

// Render draws every object into the borrowed buffers. Objects may be
// drawn in any order; occlusion is settled by the depth buffer.
func (s *Scene) Render(r *renderer.Renderer, color *renderer.Buffer, depth *renderer.DepthBuffer) {
	view := s.Camera.ViewMatrix()
	for _, obj := range s.Objects {
		r.DrawMesh(obj.Mesh, obj.Rotation, obj.Position, view, s.Camera.Position, s.Light, obj.Texture, color, depth)
	}
}

// Tick advances object animation by dt seconds
func (s *Scene) Tick(dt float64) {
	for _, obj := range s.Objects {
		obj.Rotation = obj.Rotation.Add(obj.Spin.Multiply(dt))
	}
}
