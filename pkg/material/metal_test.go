package material

import (
	"math/rand"
	"testing"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	tolerance := 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_AbsorbsReflectionIntoSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray travelling along the normal direction reflects into the surface
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	if _, didScatter := metal.Scatter(rayIn, hit, sampler); didScatter {
		t.Error("Expected reflection into the surface to be absorbed")
	}
}

func TestMetal_FuzzyReflectionStaysOutside(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.8)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}

	for i := 0; i < 200; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, sampler)
		if !ok {
			continue
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray %v points into the surface", scatter.Scattered.Direction)
		}
	}
}
