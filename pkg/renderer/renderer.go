package renderer

import (
	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
)

// Config contains the fixed per-renderer projection parameters
type Config struct {
	Width  int     // destination buffer width in pixels
	Height int     // destination buffer height in pixels
	FOV    float64 // vertical field of view in degrees
	Near   float64 // near plane distance
	Far    float64 // far plane distance
}

// DefaultConfig returns the projection parameters the built-in scenes use
func DefaultConfig(width, height int) Config {
	return Config{
		Width:  width,
		Height: height,
		FOV:    90,
		Near:   0.1,
		Far:    100,
	}
}

// Renderer drives the geometry pipeline for one destination size and
// projection. It holds no frame state: the color and depth buffers are
// owned by the caller and borrowed mutably for the duration of each
// DrawMesh call, so a single Renderer serves any number of frames.
type Renderer struct {
	config     Config
	projection core.Mat4
}

// NewRenderer creates a renderer for the given projection parameters
func NewRenderer(config Config) *Renderer {
	aspect := float64(config.Width) / float64(config.Height)
	return &Renderer{
		config:     config,
		projection: core.Perspective(aspect, config.FOV, config.Near, config.Far),
	}
}

// Config returns the renderer's projection parameters
func (r *Renderer) Config() Config {
	return r.config
}

// DrawMesh runs one mesh through the full pipeline: model transform,
// backface cull, directional lighting, view transform, near-plane clip,
// projection with perspective-correct UV weighting, viewport mapping,
// screen-edge clipping, and scanline rasterization into the borrowed
// buffers. Faces are processed in mesh order, but occlusion is settled per
// pixel by the depth buffer, so draw order never affects the result.
func (r *Renderer) DrawMesh(
	mesh *geometry.Mesh,
	rotation, position core.Vec3,
	view core.Mat4,
	cameraPos core.Vec4,
	light core.Vec3,
	tex *Buffer,
	color *Buffer,
	depth *DepthBuffer,
) {
	// Rotation then translation; meshes carry no scale
	world := core.RotateX(rotation.X).
		Mul(core.RotateY(rotation.Y)).
		Mul(core.RotateZ(rotation.Z)).
		Mul(core.Translate(position.X, position.Y, position.Z))

	nearPlane := core.NewPoint(0, 0, r.config.Near)
	nearNormal := core.NewVec3(0, 0, 1)

	for _, face := range mesh.Faces {
		worldTri := geometry.NewTriangle(
			mesh.Vertices[face.V[0]].MulMat(world),
			mesh.Vertices[face.V[1]].MulMat(world),
			mesh.Vertices[face.V[2]].MulMat(world),
			face.UV[0], face.UV[1], face.UV[2], 0,
		)
		normal := worldTri.Normal()

		// Back-facing or edge-on triangles never reach the screen
		if normal.Dot(worldTri.V[0].Subtract(cameraPos).Vec3()) >= 0 {
			continue
		}

		// Single directional term; clamped to [0,255] at paint time
		intensity := normal.Dot(light)*205 + 50

		viewTri := geometry.NewTriangle(
			worldTri.V[0].MulMat(view), worldTri.V[1].MulMat(view), worldTri.V[2].MulMat(view),
			face.UV[0], face.UV[1], face.UV[2],
			intensity,
		)

		for _, clipped := range ClipAgainstPlane(nearPlane, nearNormal, viewTri) {
			screenTri := r.project(clipped)
			for _, visible := range clipAgainstScreenEdges(screenTri, color.Width, color.Height) {
				DrawTriangle(color, depth, visible, tex)
			}
		}
	}
}

// project applies the projection matrix to a view-space triangle and maps
// the result to pixel coordinates. For each vertex the texture coordinate
// is divided by the clip-space W before the position's own perspective
// divide, and 1/W is stored as the coordinate's depth weight; both then
// interpolate linearly in screen space.
func (r *Renderer) project(tri geometry.Triangle) geometry.Triangle {
	out := tri
	for i := 0; i < 3; i++ {
		p := tri.V[i].MulMat(r.projection)

		out.UV[i] = core.TexCoord{
			U: tri.UV[i].U / p.W,
			V: tri.UV[i].V / p.W,
			W: 1 / p.W,
		}

		p = p.Divide(p.W)
		out.V[i] = core.NewPoint(
			(p.X+1)*float64(r.config.Width)/2,
			(p.Y+1)*float64(r.config.Height)/2,
			p.Z,
		)
	}
	return out
}
