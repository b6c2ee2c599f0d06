package renderer

import (
	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
)

// signedDistance classifies a point against the plane through planePoint
// with the given normal. Non-negative means inside (kept).
func signedDistance(normal core.Vec3, planePoint, p core.Vec4) float64 {
	return normal.Dot(p.Subtract(planePoint).Vec3())
}

// intersectPlane returns the point where the segment from start to end
// crosses the plane, plus the parametric t of the crossing. A segment
// parallel to the plane divides by zero and yields Inf/NaN; that cannot
// happen for a segment whose endpoints straddle the plane.
func intersectPlane(normal core.Vec3, planePoint, start, end core.Vec4) (core.Vec4, float64) {
	planeD := normal.Dot(planePoint.Vec3())
	ad := normal.Dot(start.Vec3())
	bd := normal.Dot(end.Vec3())
	t := (planeD - ad) / (bd - ad)
	return start.Add(end.Subtract(start).Multiply(t)), t
}

// ClipAgainstPlane clips one triangle against the half-space on the normal
// side of the plane (Sutherland-Hodgman restricted to a triangle), emitting
// 0, 1, or 2 triangles. Texture coordinates at newly created vertices are
// interpolated with the same parametric t as the spatial intersection, so
// attributes stay continuous across clip seams.
//
// The routine is geometry-agnostic: the pipeline uses it once against the
// near plane in view space and four times against the viewport edges in
// screen space.
func ClipAgainstPlane(planePoint core.Vec4, normal core.Vec3, tri geometry.Triangle) []geometry.Triangle {
	n := normal.Normalize()

	var inside, outside [3]int
	var insideCount, outsideCount int
	for i := 0; i < 3; i++ {
		if signedDistance(n, planePoint, tri.V[i]) >= 0 {
			inside[insideCount] = i
			insideCount++
		} else {
			outside[outsideCount] = i
			outsideCount++
		}
	}

	switch insideCount {
	case 0:
		return nil
	case 3:
		return []geometry.Triangle{tri}
	case 1:
		// One corner survives: the clipped region is a smaller triangle
		// whose two new corners sit exactly on the plane.
		in := inside[0]
		out1, out2 := outside[0], outside[1]

		p1, t1 := intersectPlane(n, planePoint, tri.V[in], tri.V[out1])
		p2, t2 := intersectPlane(n, planePoint, tri.V[in], tri.V[out2])

		return []geometry.Triangle{
			geometry.NewTriangle(
				tri.V[in], p1, p2,
				tri.UV[in],
				tri.UV[in].Lerp(tri.UV[out1], t1),
				tri.UV[in].Lerp(tri.UV[out2], t2),
				tri.Intensity,
			),
		}
	default:
		// Two corners survive: the clipped region is a quadrilateral,
		// tiled by two triangles sharing the first intersection point.
		in1, in2 := inside[0], inside[1]
		out := outside[0]

		p1, t1 := intersectPlane(n, planePoint, tri.V[in1], tri.V[out])
		p2, t2 := intersectPlane(n, planePoint, tri.V[in2], tri.V[out])
		uv1 := tri.UV[in1].Lerp(tri.UV[out], t1)
		uv2 := tri.UV[in2].Lerp(tri.UV[out], t2)

		return []geometry.Triangle{
			geometry.NewTriangle(
				tri.V[in1], tri.V[in2], p1,
				tri.UV[in1], tri.UV[in2], uv1,
				tri.Intensity,
			),
			geometry.NewTriangle(
				tri.V[in2], p2, p1,
				tri.UV[in2], uv2, uv1,
				tri.Intensity,
			),
		}
	}
}

// clipAgainstScreenEdges pushes triangles through the four viewport edge
// planes in turn, using a worklist so the output of one edge feeds the
// next. Each edge can at most double the triangle count, bounding the
// fan-out at 16 per input triangle.
func clipAgainstScreenEdges(tri geometry.Triangle, width, height int) []geometry.Triangle {
	type plane struct {
		point  core.Vec4
		normal core.Vec3
	}
	planes := [4]plane{
		{core.NewPoint(0, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewPoint(0, float64(height)-1, 0), core.NewVec3(0, -1, 0)},
		{core.NewPoint(0, 0, 0), core.NewVec3(1, 0, 0)},
		{core.NewPoint(float64(width)-1, 0, 0), core.NewVec3(-1, 0, 0)},
	}

	work := []geometry.Triangle{tri}
	for _, p := range planes {
		next := make([]geometry.Triangle, 0, len(work)*2)
		for _, t := range work {
			next = append(next, ClipAgainstPlane(p.point, p.normal, t)...)
		}
		work = next
		if len(work) == 0 {
			break
		}
	}
	return work
}
