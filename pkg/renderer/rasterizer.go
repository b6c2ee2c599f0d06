package renderer

import (
	"github.com/df07/go-scanline-renderer/pkg/geometry"
)

// DrawTriangle rasterizes one screen-space triangle into the color and
// depth buffers. Vertex positions are in pixel coordinates (truncated to
// ints); each texture coordinate's W component must hold the vertex's
// clip-space depth reciprocal, as produced by the projection stage.
//
// Scanline algorithm: the vertices are sorted by ascending y and the
// triangle is filled as two halves split at the middle vertex, each bounded
// by the long y1->y3 edge and one short edge. U, V, and 1/W interpolate
// linearly along the edges and across each scanline; the perspective-correct
// sample point is (u/invW, v/invW). A pixel is painted only when its
// interpolated 1/W is strictly smaller than the stored depth weight (see
// DepthBuffer for why smaller means nearer here). Pixels that truncate
// outside the buffer are skipped silently.
//
// If tex is nil the triangle is shaded flat with its lighting intensity,
// clamped to [0, 255] at paint time.
func DrawTriangle(color *Buffer, depth *DepthBuffer, tri geometry.Triangle, tex *Buffer) {
	x1, y1 := int(tri.V[0].X), int(tri.V[0].Y)
	x2, y2 := int(tri.V[1].X), int(tri.V[1].Y)
	x3, y3 := int(tri.V[2].X), int(tri.V[2].Y)
	u1, v1, w1 := tri.UV[0].U, tri.UV[0].V, tri.UV[0].W
	u2, v2, w2 := tri.UV[1].U, tri.UV[1].V, tri.UV[1].W
	u3, v3, w3 := tri.UV[2].U, tri.UV[2].V, tri.UV[2].W

	// Sort vertices by ascending y, carrying attributes along
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		u1, v1, w1, u2, v2, w2 = u2, v2, w2, u1, v1, w1
	}
	if y3 < y1 {
		x1, y1, x3, y3 = x3, y3, x1, y1
		u1, v1, w1, u3, v3, w3 = u3, v3, w3, u1, v1, w1
	}
	if y3 < y2 {
		x2, y2, x3, y3 = x3, y3, x2, y2
		u2, v2, w2, u3, v3, w3 = u3, v3, w3, u2, v2, w2
	}

	flat := uint8(clamp(tri.Intensity, 0, 255))

	// Long edge y1->y3 bounds both halves
	dy2 := y3 - y1
	var dbxStep, du2Step, dv2Step, dw2Step float64
	if dy2 != 0 {
		abs := float64(dy2)
		dbxStep = float64(x3-x1) / abs
		du2Step = (u3 - u1) / abs
		dv2Step = (v3 - v1) / abs
		dw2Step = (w3 - w1) / abs
	}

	scanline := func(i, ax, bx int, su, sv, sw, eu, ev, ew float64) {
		if ax > bx {
			ax, bx = bx, ax
			su, sv, sw, eu, ev, ew = eu, ev, ew, su, sv, sw
		}
		if i < 0 || i >= color.Height {
			return
		}

		tStep := 1.0 / float64(bx-ax)
		t := 0.0
		for j := ax; j < bx; j++ {
			u := (1-t)*su + t*eu
			v := (1-t)*sv + t*ev
			w := (1-t)*sw + t*ew
			t += tStep

			if j < 0 || j >= color.Width {
				continue
			}
			idx := i*depth.Width + j
			if w < depth.Data[idx] {
				if tex != nil {
					r, g, b := tex.Sample(u/w, v/w)
					color.Set(j, i, r, g, b)
				} else {
					color.Set(j, i, flat, flat, flat)
				}
				depth.Data[idx] = w
			}
		}
	}

	// Top half: y1 -> y2
	if dy1 := y2 - y1; dy1 != 0 {
		abs := float64(dy1)
		daxStep := float64(x2-x1) / abs
		du1Step := (u2 - u1) / abs
		dv1Step := (v2 - v1) / abs
		dw1Step := (w2 - w1) / abs

		for i := y1; i <= y2; i++ {
			dy := float64(i - y1)
			ax := x1 + int(dy*daxStep)
			bx := x1 + int(dy*dbxStep)
			scanline(i, ax, bx,
				u1+dy*du1Step, v1+dy*dv1Step, w1+dy*dw1Step,
				u1+dy*du2Step, v1+dy*dv2Step, w1+dy*dw2Step)
		}
	}

	// Bottom half: y2 -> y3
	if dy1 := y3 - y2; dy1 != 0 {
		abs := float64(dy1)
		daxStep := float64(x3-x2) / abs
		du1Step := (u3 - u2) / abs
		dv1Step := (v3 - v2) / abs
		dw1Step := (w3 - w2) / abs

		for i := y2; i <= y3; i++ {
			dyShort := float64(i - y2)
			dyLong := float64(i - y1)
			ax := x2 + int(dyShort*daxStep)
			bx := x1 + int(dyLong*dbxStep)
			scanline(i, ax, bx,
				u2+dyShort*du1Step, v2+dyShort*dv1Step, w2+dyShort*dw1Step,
				u1+dyLong*du2Step, v1+dyLong*dv2Step, w1+dyLong*dw2Step)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
