package geometry

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with t in (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// GetCenter returns the geometric center, used to aim light probes
	GetCenter() core.Vec3
	// GetMaterial returns the surface material
	GetMaterial() material.Material
	// BoundingBox returns a box enclosing the surface
	BoundingBox() core.AABB
}
