package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphere_StaysAboveSurface(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 200; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())
			if dir.Dot(normal) < -1e-12 {
				t.Fatalf("Expected direction in hemisphere of %v, got %v", normal, dir)
			}
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 500; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Expected z=0, got %f", p.Z)
		}
		if p.Length() > 1+1e-12 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
	}

	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); p != (Vec3{}) {
		t.Errorf("Expected disk center for centered sample, got %v", p)
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(11)
	for i := 0; i < 500; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-12 {
			t.Fatalf("Expected point inside unit sphere, got %v (length %f)", p, p.Length())
		}
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 100; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Expected value in [0,1), got %f", v)
		}
	}
}
