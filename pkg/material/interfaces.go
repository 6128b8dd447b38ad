package material

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
)

// Material interface for objects that can scatter rays.
//
// Scatter returns false when the incoming ray is fully absorbed. When it returns
// true, ScatterResult.Scattered is either the continuation ray or nil for a surface
// that only emits, in which case Attenuation is the emitted radiance.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   *core.Ray // Continuation ray, nil for pure emission
	Attenuation core.Vec3 // Color attenuation, or emission when Scattered is nil
}

// IsEmission returns true if the result carries emitted radiance instead of a bounce
func (s ScatterResult) IsEmission() bool {
	return s.Scattered == nil
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
	UV        core.Vec2 // Texture coordinates in [0,1]²
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// scattered builds a successful bounce result, absorbing degenerate directions
// so that NaN or zero-length rays never leave a material.
func scattered(origin, direction, attenuation core.Vec3) (ScatterResult, bool) {
	if !direction.IsFinite() || direction.NearZero() {
		return ScatterResult{}, false
	}
	ray := core.NewRay(origin, direction)
	return ScatterResult{Scattered: &ray, Attenuation: attenuation}, true
}

// IsLight reports whether m is the emissive light material
func IsLight(m Material) bool {
	_, ok := m.(*Light)
	return ok
}

// IsGlass reports whether m is the refractive dielectric material
func IsGlass(m Material) bool {
	_, ok := m.(*Dielectric)
	return ok
}
