package core

import "math"

// Mat4 is a row-major 4x4 transform matrix. Points multiply on the left
// (row vector times matrix), so composed transforms apply left to right:
// v.MulMat(a.Mul(b)) rotates by a before b. The pipeline composes model
// transforms in the fixed order rotateX * rotateY * rotateZ * translate.
type Mat4 [4][4]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	var m Mat4
	m[0][0] = 1
	m[1][1] = 1
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// Mul returns the matrix product m * other. Matrix multiplication is
// associative but not commutative; call order is part of the contract.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MulMat multiplies a homogeneous point by the matrix (row vector on the
// left). The result carries whatever W the matrix produces; projective
// matrices leave the perspective divide to the caller.
func (p Vec4) MulMat(m Mat4) Vec4 {
	return Vec4{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + p.W*m[3][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + p.W*m[3][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + p.W*m[3][2],
		W: p.X*m[0][3] + p.Y*m[1][3] + p.Z*m[2][3] + p.W*m[3][3],
	}
}

// RotateX builds a rotation about the X axis by angle radians
func RotateX(angle float64) Mat4 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	var m Mat4
	m[0][0] = 1
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	m[3][3] = 1
	return m
}

// RotateY builds a rotation about the Y axis by angle radians
func RotateY(angle float64) Mat4 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	var m Mat4
	m[0][0] = cos
	m[0][2] = sin
	m[1][1] = 1
	m[2][0] = -sin
	m[2][2] = cos
	m[3][3] = 1
	return m
}

// RotateZ builds a rotation about the Z axis by angle radians
func RotateZ(angle float64) Mat4 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	var m Mat4
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// Translate builds a translation by (x, y, z)
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

// Perspective builds a projection matrix from an aspect ratio (width over
// height), a vertical field of view in degrees, and near/far distances.
//
// The clip-space W of a projected point is the negated view-space depth
// (m[2][3] = -1), so for geometry in front of the camera both the projected
// UV weights and the per-pixel depth reciprocal 1/W come out negative. The
// depth test direction in the rasterizer depends on this sign; see
// renderer.DepthBuffer.
func Perspective(aspect, fovDegrees, near, far float64) Mat4 {
	fov := fovDegrees / 180.0 * math.Pi
	f := 1.0 / math.Tan(fov/2.0)

	var m Mat4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

// PointAt builds the camera-to-world transform for a camera at pos looking
// toward target. The up hint is re-orthogonalized against the forward
// direction (Gram-Schmidt) and the right axis comes from their cross
// product, so the rotation block is orthonormal by construction.
func PointAt(pos, target Vec4, up Vec3) Mat4 {
	forward := target.Subtract(pos).Vec3().Normalize()
	newUp := up.Subtract(forward.Multiply(up.Dot(forward))).Normalize()
	right := newUp.Cross(forward)

	var m Mat4
	m[0][0], m[0][1], m[0][2] = right.X, right.Y, right.Z
	m[1][0], m[1][1], m[1][2] = newUp.X, newUp.Y, newUp.Z
	m[2][0], m[2][1], m[2][2] = forward.X, forward.Y, forward.Z
	m[3][0], m[3][1], m[3][2] = pos.X, pos.Y, pos.Z
	m[3][3] = 1
	return m
}

// QuickInverse inverts a point-at matrix by transposing its rotation block
// and re-deriving the translation row. Valid only for orthonormal
// rotation+translation matrices, which PointAt guarantees; it avoids a
// general 4x4 inversion.
func (m Mat4) QuickInverse() Mat4 {
	var inv Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = m[j][i]
		}
	}
	inv[3][0] = -(m[3][0]*inv[0][0] + m[3][1]*inv[1][0] + m[3][2]*inv[2][0])
	inv[3][1] = -(m[3][0]*inv[0][1] + m[3][1]*inv[1][1] + m[3][2]*inv[2][1])
	inv[3][2] = -(m[3][0]*inv[0][2] + m[3][1]*inv[1][2] + m[3][2]*inv[2][2])
	inv[3][3] = 1
	return inv
}

// RotateMat rotates a direction vector through the matrix, ignoring the
// translation row. Used to derive camera basis vectors from yaw/pitch with
// the same rotation matrices the meshes use.
func (v Vec3) RotateMat(m Mat4) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}
