package geometry

import (
	"math"
	"testing"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

func TestWorld_HitClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial)
	far := NewEllipsoid(core.NewVec3(0, 0, -6), core.NewVec3(1, 1, 1), material.NewMetal(core.NewVec3(1, 1, 1), 0))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, world := range []World{{near, far}, {far, near}} {
		hit, isHit := world.Hit(ray, 0.001, math.MaxFloat64)
		if !isHit {
			t.Fatal("Expected hit, but got miss")
		}
		if math.Abs(hit.T-1.5) > 1e-12 {
			t.Errorf("Expected closest hit at t=1.5, got t=%f", hit.T)
		}
		if hit.Material != testMaterial {
			t.Error("Expected the nearer sphere's material")
		}
	}
}

func TestWorld_HitEmpty(t *testing.T) {
	var world World
	if _, isHit := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0.001, math.MaxFloat64); isHit {
		t.Error("Expected empty world to miss")
	}
}

func TestFindLights(t *testing.T) {
	world := []Shape{
		NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLight(core.NewVec3(1, 1, 1))),
		NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	}

	lights := FindLights(world)
	if len(lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(lights))
	}
	if lights[0] != world[0] {
		t.Error("Expected the light sphere to be returned")
	}

	withEllipsoid := append(world, NewEllipsoid(core.NewVec3(2, 0, 0), core.NewVec3(1, 2, 1), material.NewLight(core.NewVec3(2, 2, 2))))
	if got := len(FindLights(withEllipsoid)); got != 2 {
		t.Errorf("Expected 2 lights, got %d", got)
	}

	if got := len(FindLights(nil)); got != 0 {
		t.Errorf("Expected no lights, got %d", got)
	}
}
