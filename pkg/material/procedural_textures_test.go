package material

import (
	"testing"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

func TestCheckerboardTexture(t *testing.T) {
	black := core.NewVec3(0, 0, 0)
	white := core.NewVec3(1, 1, 1)
	checker := NewCheckerboardTexture(2, white, black)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		// V=1 is the top row of the image
		{"top left", core.NewVec2(0.1, 0.9), white},
		{"top right", core.NewVec2(0.9, 0.9), black},
		{"bottom left", core.NewVec2(0.1, 0.1), black},
		{"bottom right", core.NewVec2(0.9, 0.1), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCheckerboardTexture_Degenerate(t *testing.T) {
	checker := NewCheckerboardTexture(0, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	if got := checker.Evaluate(core.NewVec2(0.7, 0.2), core.Vec3{}); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected a single check of the first color, got %v", got)
	}
}

func TestCheckerboardTexture_SizeIsBounded(t *testing.T) {
	tests := []struct {
		checks   int
		expected int
	}{
		{2, 512},
		{3, 510},
		{MaxCheckerChecks, 512},
		{100000, 512},
	}

	for _, tt := range tests {
		checker := NewCheckerboardTexture(tt.checks, core.NewVec3(1, 1, 1), core.Vec3{})
		if checker.Width != tt.expected || checker.Height != tt.expected {
			t.Errorf("checks=%d: expected %dx%d texture, got %dx%d", tt.checks, tt.expected, tt.expected, checker.Width, checker.Height)
		}
		if len(checker.Pixels) != tt.expected*tt.expected {
			t.Errorf("checks=%d: expected %d pixels, got %d", tt.checks, tt.expected*tt.expected, len(checker.Pixels))
		}
	}
}
