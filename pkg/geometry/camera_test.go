package geometry

import (
	"math"
	"testing"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

func TestViewportCamera_LowerLeftCorner(t *testing.T) {
	camera := NewViewportCamera(core.NewVec3(0, 0, 0), 2.0, float64(800/600)*2.0, 1.0)

	if camera.Origin() != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected origin (0,0,0), got %v", camera.Origin())
	}

	expected := core.NewVec3(-1, -1, -1)
	if camera.LowerLeftCorner() != expected {
		t.Errorf("Expected lower left corner %v, got %v", expected, camera.LowerLeftCorner())
	}
}

func TestViewportCamera_GetRay(t *testing.T) {
	camera := NewViewportCamera(core.NewVec3(0, 0, 0), 2.0, 4.0, 1.0)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, nil)
			if ray.Origin != camera.Origin() {
				t.Errorf("Expected origin %v, got %v", camera.Origin(), ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_LookAtForward(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, -3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 1.333,
	})

	expected := core.NewVec3(0, 0, 1)
	if camera.Forward().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, camera.Forward())
	}

	// The image-plane center maps onto the viewing axis
	center := camera.GetRay(0.5, 0.5, nil)
	if center.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray along %v, got %v", expected, center.Direction)
	}

	// Top of the image plane is up, right is -X when looking down +Z with +Y up
	top := camera.GetRay(0.5, 1.0, nil)
	if top.Direction.Y <= 0 {
		t.Errorf("Expected top ray to point up, got %v", top.Direction)
	}
	right := camera.GetRay(1.0, 0.5, nil)
	if right.Direction.X >= 0 {
		t.Errorf("Expected right ray to point towards -X, got %v", right.Direction)
	}
}

func TestCamera_VerticalFieldOfView(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	})

	top := camera.GetRay(0.5, 1.0, nil).Direction.Normalize()
	angle := math.Acos(top.Dot(camera.Forward())) * 180 / math.Pi
	if math.Abs(angle-45.0) > 1e-9 {
		t.Errorf("Expected half vertical fov of 45 degrees, got %f", angle)
	}
}

func TestCamera_ThinLensJittersOrigin(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      0.5,
		FocusDistance: 4.0,
	})
	sampler := core.NewSeededSampler(42)

	focusPoint := camera.GetRay(0.5, 0.5, nil).At(1.0)
	moved := false
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin.Length() > 0.25+1e-12 {
			t.Fatalf("Lens origin %v outside aperture", ray.Origin)
		}
		if ray.Origin != camera.Origin() {
			moved = true
		}
		// All lens rays converge on the focus plane
		if ray.At(1.0).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Expected ray to pass through %v, got %v", focusPoint, ray.At(1.0))
		}
	}
	if !moved {
		t.Error("Expected thin lens to jitter ray origins")
	}
}
