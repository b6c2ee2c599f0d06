package geometry

import (
	"github.com/df07/go-scanline-renderer/pkg/core"
)

// Vertex is a homogeneous point in a mesh's vertex pool. Meshes carry no
// per-vertex normals; face normals are recomputed per frame from winding.
type Vertex = core.Vec4

// Face references three vertices in the mesh's vertex pool by index and
// carries one texture coordinate per corner.
type Face struct {
	V  [3]int
	UV [3]core.TexCoord
}

// Mesh owns a vertex pool and a face list. It is immutable after load:
// created once by a procedural generator or a file loader and read-only for
// the rest of the program.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// NewMesh creates a mesh from a vertex pool and face list
func NewMesh(vertices []Vertex, faces []Face) *Mesh {
	for _, f := range faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= len(vertices) {
				panic("Face index out of bounds")
			}
		}
	}
	return &Mesh{Vertices: vertices, Faces: faces}
}

// quadUV holds the per-corner texture coordinates for the two triangles of
// an axis-aligned quad: (top-left, bottom-left, bottom-right) and
// (top-left, bottom-right, top-right).
var quadUV = [2][3]core.TexCoord{
	{core.NewTexCoord(0, 1), core.NewTexCoord(0, 0), core.NewTexCoord(1, 0)},
	{core.NewTexCoord(0, 1), core.NewTexCoord(1, 0), core.NewTexCoord(1, 1)},
}

// NewCube creates a unit cube centered at the origin: 8 vertices, 12
// triangles, wound so cross(v2-v1, v3-v1) points out of each face.
func NewCube() *Mesh {
	vertices := []Vertex{
		core.NewPoint(-0.5, -0.5, -0.5),
		core.NewPoint(-0.5, 0.5, -0.5),
		core.NewPoint(0.5, 0.5, -0.5),
		core.NewPoint(0.5, -0.5, -0.5),
		core.NewPoint(0.5, -0.5, 0.5),
		core.NewPoint(0.5, 0.5, 0.5),
		core.NewPoint(-0.5, 0.5, 0.5),
		core.NewPoint(-0.5, -0.5, 0.5),
	}

	// Two triangles per side: south, east, north, west, top, bottom
	indices := [12][3]int{
		{0, 1, 2}, {0, 2, 3},
		{3, 2, 5}, {3, 5, 4},
		{4, 5, 6}, {4, 6, 7},
		{7, 6, 1}, {7, 1, 0},
		{1, 6, 5}, {1, 5, 2},
		{4, 7, 0}, {4, 0, 3},
	}

	faces := make([]Face, 0, len(indices))
	for i, idx := range indices {
		faces = append(faces, Face{V: idx, UV: quadUV[i%2]})
	}
	return NewMesh(vertices, faces)
}

// NewQuad creates a quad in the XY plane centered at the origin, split into
// two triangles along the diagonal, with texture coordinates spanning the
// full [0,1] range: corners (0,0), (1,0), (1,1), (0,1).
func NewQuad(size float64) *Mesh {
	h := size / 2
	vertices := []Vertex{
		core.NewPoint(-h, -h, 0),
		core.NewPoint(-h, h, 0),
		core.NewPoint(h, h, 0),
		core.NewPoint(h, -h, 0),
	}
	faces := []Face{
		{V: [3]int{0, 1, 2}, UV: [3]core.TexCoord{
			core.NewTexCoord(0, 0), core.NewTexCoord(0, 1), core.NewTexCoord(1, 1),
		}},
		{V: [3]int{0, 2, 3}, UV: [3]core.TexCoord{
			core.NewTexCoord(0, 0), core.NewTexCoord(1, 1), core.NewTexCoord(1, 0),
		}},
	}
	return NewMesh(vertices, faces)
}
