package renderer

import (
	"github.com/df07/go-scanline-renderer/pkg/core"
)

// Camera is a first-person camera: a world-space position plus yaw and
// pitch angles. Its basis vectors come from rotating the canonical axes
// through the same rotation matrices the meshes use, and the view matrix is
// the fast orthonormal inverse of the resulting point-at transform.
type Camera struct {
	Position core.Vec4
	Yaw      float64 // rotation about Y, radians
	Pitch    float64 // rotation about X, radians
	Up       core.Vec3
}

// NewCamera creates a camera at the given position looking along +Z
func NewCamera(position core.Vec4) *Camera {
	return &Camera{
		Position: position,
		Up:       core.NewVec3(0, 1, 0),
	}
}

// Forward returns the view direction for the current yaw and pitch
func (c *Camera) Forward() core.Vec3 {
	rot := core.RotateX(c.Pitch).Mul(core.RotateY(c.Yaw))
	return core.NewVec3(0, 0, 1).RotateMat(rot)
}

// Right returns the strafe direction: forward with zero pitch, swung 90
// degrees about Y. Keeping it horizontal makes strafing planar regardless
// of where the camera is pitched.
func (c *Camera) Right() core.Vec3 {
	return core.NewVec3(0, 0, 1).RotateMat(core.RotateY(c.Yaw)).Cross(c.Up).Negate()
}

// ViewMatrix returns the world-to-view transform for the current position
// and orientation
func (c *Camera) ViewMatrix() core.Mat4 {
	target := c.Position.AddVec3(c.Forward())
	return core.PointAt(c.Position, target, c.Up).QuickInverse()
}
