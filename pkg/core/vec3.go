package core

import "math"

// Vec3 represents a 3D direction or normal vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A zero-length input produces NaN components; the pipeline tolerates this
// because such triangles are degenerate and never reach the screen.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Vec4 represents a homogeneous point. W is 1 for ordinary points and only
// ever differs after a projective transform, after which it must be divided
// out before the point is treated as Cartesian again.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewPoint creates a homogeneous point with W set to 1
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Add returns the component-wise sum as a new point (W reset to 1)
func (p Vec4) Add(other Vec4) Vec4 {
	return NewPoint(p.X+other.X, p.Y+other.Y, p.Z+other.Z)
}

// Subtract returns the component-wise difference as a new point (W reset to 1)
func (p Vec4) Subtract(other Vec4) Vec4 {
	return NewPoint(p.X-other.X, p.Y-other.Y, p.Z-other.Z)
}

// Multiply returns the spatial components scaled by a scalar (W reset to 1)
func (p Vec4) Multiply(scalar float64) Vec4 {
	return NewPoint(p.X*scalar, p.Y*scalar, p.Z*scalar)
}

// Divide returns the spatial components divided by a scalar (W reset to 1).
// Called with the point's own W this is the perspective divide.
func (p Vec4) Divide(scalar float64) Vec4 {
	return NewPoint(p.X/scalar, p.Y/scalar, p.Z/scalar)
}

// Vec3 drops the homogeneous component
func (p Vec4) Vec3() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// AddVec3 offsets the point by a direction vector
func (p Vec4) AddVec3(d Vec3) Vec4 {
	return NewPoint(p.X+d.X, p.Y+d.Y, p.Z+d.Z)
}

// TexCoord is a texture coordinate carried per triangle corner. W is not a
// spatial coordinate: after projection it holds the reciprocal of the
// vertex's clip-space depth, so U/W and V/W can be interpolated linearly in
// screen space and divided back out per pixel (perspective correction).
type TexCoord struct {
	U, V, W float64
}

// NewTexCoord creates a texture coordinate with the depth weight set to 1
func NewTexCoord(u, v float64) TexCoord {
	return TexCoord{U: u, V: v, W: 1}
}

// Lerp linearly interpolates between two texture coordinates
func (t TexCoord) Lerp(other TexCoord, s float64) TexCoord {
	return TexCoord{
		U: t.U + s*(other.U-t.U),
		V: t.V + s*(other.V-t.V),
		W: t.W + s*(other.W-t.W),
	}
}
