package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-renderer/pkg/core"
)

func TestCamera_DefaultLooksAlongPositiveZ(t *testing.T) {
	cam := NewCamera(core.NewPoint(0, 0, -5))

	forward := cam.Forward()
	if forward.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected forward (0,0,1), got %v", forward)
	}

	// A point straight ahead lands on the view axis at its distance
	view := cam.ViewMatrix()
	ahead := core.NewPoint(0, 0, 0).MulMat(view)
	if math.Abs(ahead.X) > 1e-12 || math.Abs(ahead.Y) > 1e-12 || math.Abs(ahead.Z-5) > 1e-12 {
		t.Errorf("Expected view-space (0,0,5), got %v", ahead)
	}
}

func TestCamera_ViewMatrixMapsPositionToOrigin(t *testing.T) {
	cam := NewCamera(core.NewPoint(3, -2, 7))
	cam.Yaw = 0.8
	cam.Pitch = -0.3

	origin := cam.Position.MulMat(cam.ViewMatrix())
	if origin.Vec3().Length() > 1e-12 {
		t.Errorf("Expected camera position to map to origin, got %v", origin)
	}
}

func TestCamera_ForwardStaysUnit(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
	}{
		{"identity", 0, 0},
		{"yawed", 1.1, 0},
		{"pitched", 0, 0.7},
		{"combined", -2.3, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(core.NewPoint(0, 0, 0))
			cam.Yaw = tt.yaw
			cam.Pitch = tt.pitch
			if got := cam.Forward().Length(); math.Abs(got-1) > 1e-12 {
				t.Errorf("Expected unit forward, got length %v", got)
			}
		})
	}
}

func TestCamera_RightIsHorizontalAndOrthogonal(t *testing.T) {
	cam := NewCamera(core.NewPoint(0, 0, 0))
	cam.Yaw = 0.6
	cam.Pitch = 0.9 // pitch must not tilt the strafe direction

	right := cam.Right()
	if math.Abs(right.Y) > 1e-12 {
		t.Errorf("Expected horizontal right vector, got %v", right)
	}

	flatForward := core.NewVec3(0, 0, 1).RotateMat(core.RotateY(cam.Yaw))
	if math.Abs(right.Dot(flatForward)) > 1e-12 {
		t.Errorf("Expected right orthogonal to forward, got dot %v", right.Dot(flatForward))
	}
}
