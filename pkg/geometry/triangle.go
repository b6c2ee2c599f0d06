package geometry

import (
	"github.com/df07/go-scanline-renderer/pkg/core"
)

// Triangle is the value passed between pipeline stages: three vertices,
// three texture coordinates, and a flat lighting intensity. Every stage
// (world, view, clip, projection, screen clip) produces a fresh Triangle;
// no stage mutates its input.
type Triangle struct {
	V         [3]core.Vec4
	UV        [3]core.TexCoord
	Intensity float64
}

// NewTriangle creates a triangle from three vertices and their texture
// coordinates, carrying the given lighting intensity
func NewTriangle(v1, v2, v3 core.Vec4, t1, t2, t3 core.TexCoord, intensity float64) Triangle {
	return Triangle{
		V:         [3]core.Vec4{v1, v2, v3},
		UV:        [3]core.TexCoord{t1, t2, t3},
		Intensity: intensity,
	}
}

// Normal returns the normalized face normal cross(v2-v1, v3-v1)
func (t Triangle) Normal() core.Vec3 {
	line1 := t.V[1].Subtract(t.V[0]).Vec3()
	line2 := t.V[2].Subtract(t.V[0]).Vec3()
	return line1.Cross(line2).Normalize()
}
