package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

func randomShapes(random *rand.Rand, n int) []Shape {
	shapes := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-30)
		if i%2 == 0 {
			shapes = append(shapes, NewSphere(center, 0.2+random.Float64(), testMaterial))
		} else {
			radii := core.NewVec3(0.2+random.Float64(), 0.2+random.Float64(), 0.2+random.Float64())
			shapes = append(shapes, NewEllipsoid(center, radii, testMaterial))
		}
	}
	return shapes
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	shapes := randomShapes(random, 60)
	bvh := NewBVH(shapes)
	world := World(shapes)

	if bvh.Root == nil || bvh.Root.Shapes != nil {
		t.Fatal("Expected an internal root node for 60 shapes")
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		target := core.NewVec3(random.Float64()*24-12, random.Float64()*24-12, -20)
		ray := core.NewRay(core.Vec3{}, target)

		want, wantOk := world.Hit(ray, 0.001, math.MaxFloat64)
		got, gotOk := bvh.Hit(ray, 0.001, math.MaxFloat64)
		if wantOk != gotOk {
			t.Fatalf("Ray %v: linear hit=%t, bvh hit=%t", ray, wantOk, gotOk)
		}
		if !wantOk {
			continue
		}
		hits++
		if math.Abs(want.T-got.T) > 1e-9 {
			t.Errorf("Ray %v: linear t=%v, bvh t=%v", ray, want.T, got.T)
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit")
	}
}

func TestBVH_SmallSceneIsSingleLeaf(t *testing.T) {
	shapes := randomShapes(rand.New(rand.NewSource(1)), leafThreshold)
	bvh := NewBVH(shapes)
	if bvh.Root == nil || len(bvh.Root.Shapes) != leafThreshold {
		t.Fatal("Expected a single leaf holding every shape")
	}
	for i := range shapes {
		if bvh.Root.Shapes[i] != shapes[i] {
			t.Fatal("Expected the leaf to keep scene order")
		}
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if _, isHit := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.MaxFloat64); isHit {
		t.Error("Expected empty BVH to miss")
	}
	if bvh.BoundingBox() != (core.AABB{}) {
		t.Error("Expected empty bounding box")
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	shapes := randomShapes(rand.New(rand.NewSource(5)), 30)
	original := append([]Shape(nil), shapes...)
	NewBVH(shapes)
	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatal("Expected NewBVH to leave the input slice untouched")
		}
	}
}

func TestShape_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial)
	if box := sphere.BoundingBox(); box.Min != core.NewVec3(-1, 0, 1) || box.Max != core.NewVec3(3, 4, 5) {
		t.Errorf("Unexpected sphere bounds %v", box)
	}

	ellipsoid := NewEllipsoid(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), testMaterial)
	if box := ellipsoid.BoundingBox(); box.Min != core.NewVec3(-1, -2, -3) || box.Max != core.NewVec3(1, 2, 3) {
		t.Errorf("Unexpected ellipsoid bounds %v", box)
	}

	invalid := NewSphere(core.NewVec3(1, 1, 1), -1, testMaterial)
	if box := invalid.BoundingBox(); box.Min != box.Max {
		t.Errorf("Expected invalid sphere to collapse to a point, got %v", box)
	}
}
