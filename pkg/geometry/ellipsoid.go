package geometry

import (
	"math"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// Ellipsoid represents an axis-aligned ellipsoid with per-axis semi-axes
type Ellipsoid struct {
	Center   core.Vec3
	Radii    core.Vec3 // Semi-axis lengths along x, y and z
	Material material.Material
}

// NewEllipsoid creates a new ellipsoid
func NewEllipsoid(center, radii core.Vec3, mat material.Material) *Ellipsoid {
	return &Ellipsoid{
		Center:   center,
		Radii:    radii,
		Material: mat,
	}
}

// GetCenter returns the ellipsoid center
func (e *Ellipsoid) GetCenter() core.Vec3 {
	return e.Center
}

// GetMaterial returns the ellipsoid material
func (e *Ellipsoid) GetMaterial() material.Material {
	return e.Material
}

func (e *Ellipsoid) validRadii() bool {
	for _, r := range []float64{e.Radii.X, e.Radii.Y, e.Radii.Z} {
		if !(r > 0) || math.IsInf(r, 0) {
			return false
		}
	}
	return true
}

// BoundingBox returns the ellipsoid's bounds. Invalid radii collapse to the center.
func (e *Ellipsoid) BoundingBox() core.AABB {
	if !e.validRadii() {
		return core.NewAABB(e.Center, e.Center)
	}
	return core.NewAABBAround(e.Center, e.Radii)
}

// Hit tests if a ray intersects with the ellipsoid.
// The ray is scaled by the radii so the surface becomes the unit sphere.
func (e *Ellipsoid) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !e.validRadii() {
		return nil, false
	}

	oc := ray.Origin.Subtract(e.Center).DivideVec(e.Radii)
	dir := ray.Direction.DivideVec(e.Radii)

	a := dir.LengthSquared()
	halfB := oc.Dot(dir)
	c := oc.LengthSquared() - 1.0

	root, ok := closestRoot(a, halfB, c, tMin, tMax)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: e.Material,
	}

	offset := hitRecord.Point.Subtract(e.Center)
	// Gradient of the implicit surface: (P-C)/r² per axis
	outwardNormal := offset.DivideVec(e.Radii.MultiplyVec(e.Radii)).Normalize()
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = unitSphereUV(offset.DivideVec(e.Radii))

	return hitRecord, true
}
