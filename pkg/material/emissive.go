package material

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
)

// Light represents a light-emitting material.
// Hitting it terminates the path with its emission as radiance.
type Light struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewLight creates a new emissive material
func NewLight(emission core.Vec3) *Light {
	return &Light{Emission: emission}
}

// Scatter implements the Material interface for lights: no continuation ray,
// the emission is returned as the attenuation slot.
func (l *Light) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{Attenuation: l.Emission}, true
}
