package scene

import (
	"fmt"

	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
	"github.com/df07/go-scanline-renderer/pkg/loaders"
	"github.com/df07/go-scanline-renderer/pkg/renderer"
)

// defaultLight shines from behind the camera toward +Z, so faces turned
// toward the viewer are the brightest
var defaultLight = core.NewVec3(0, 0, -1).Normalize()

// NewCubeScene creates a slowly spinning flat-shaded cube in front of the
// camera
func NewCubeScene() *Scene {
	return &Scene{
		Objects: []*Object{{
			Mesh:     geometry.NewCube(),
			Position: core.NewVec3(0, 0, 3),
			Spin:     core.NewVec3(0.3, 0.6, 0),
		}},
		Camera: renderer.NewCamera(core.NewPoint(0, 0, 0)),
		Light:  defaultLight,
	}
}

// NewQuadScene creates a checkerboard-textured quad facing the camera
func NewQuadScene() *Scene {
	return &Scene{
		Objects: []*Object{{
			Mesh:     geometry.NewQuad(2),
			Position: core.NewVec3(0, 0, 3),
			Texture:  NewCheckerTexture(2, 2),
		}},
		Camera: renderer.NewCamera(core.NewPoint(0, 0, 0)),
		Light:  defaultLight,
	}
}

// NewOBJScene loads a mesh (and optionally a texture) from disk and places
// it in front of the camera
func NewOBJScene(meshPath, texturePath string) (*Scene, error) {
	mesh, err := loaders.LoadOBJ(meshPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}

	var tex *renderer.Buffer
	if texturePath != "" {
		tex, err = loaders.LoadTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
	}

	return &Scene{
		Objects: []*Object{{
			Mesh:     mesh,
			Position: core.NewVec3(0, 0, 5),
			Texture:  tex,
		}},
		Camera: renderer.NewCamera(core.NewPoint(0, 0, 0)),
		Light:  defaultLight,
	}, nil
}

// NewCheckerTexture builds a black-and-white checkerboard texture with the
// given number of cells per side
func NewCheckerTexture(cellsX, cellsY int) *renderer.Buffer {
	const cellSize = 8
	buf := renderer.NewBuffer(cellsX*cellSize, cellsY*cellSize)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if (x/cellSize+y/cellSize)%2 == 0 {
				buf.Set(x, y, 255, 255, 255)
			} else {
				buf.Set(x, y, 0, 0, 0)
			}
		}
	}
	return buf
}
