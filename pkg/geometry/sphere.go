package geometry

import (
	"math"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// GetCenter returns the sphere center
func (s *Sphere) GetCenter() core.Vec3 {
	return s.Center
}

// GetMaterial returns the sphere material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}

// BoundingBox returns the sphere's bounds. An invalid sphere collapses to its center.
func (s *Sphere) BoundingBox() core.AABB {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return core.NewAABB(s.Center, s.Center)
	}
	return core.NewAABBAround(s.Center, core.NewVec3(s.Radius, s.Radius, s.Radius))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return nil, false
	}

	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	root, ok := closestRoot(a, halfB, c, tMin, tMax)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	local := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, local)
	hitRecord.UV = unitSphereUV(local)

	return hitRecord, true
}

// closestRoot solves the half-b quadratic and returns the smaller root inside
// (tMin, tMax), falling back to the larger one.
func closestRoot(a, halfB, c, tMin, tMax float64) (float64, bool) {
	if !(a > 0) {
		return 0, false
	}

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || math.IsNaN(discriminant) {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return 0, false
		}
	}
	return root, true
}

// unitSphereUV maps a point on the unit sphere to texture coordinates in [0,1]²
func unitSphereUV(p core.Vec3) core.Vec2 {
	u := math.Atan2(p.X, p.Z)/(2*math.Pi) + 0.5
	v := p.Y*0.5 + 0.5
	return core.NewVec2(clamp01(u), clamp01(v))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
