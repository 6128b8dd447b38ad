package integrator

import (
	"math"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/geometry"
	"github.com/qiujiangkun/raytracer/pkg/material"
	"github.com/qiujiangkun/raytracer/pkg/scene"
)

const (
	// rayEpsilon keeps bounced rays from re-hitting the surface they left
	rayEpsilon = 0.001

	// Per-light chance of probing the lights from a hit
	lightProbeChance      = 0.1
	glassLightProbeChance = 0.05

	// Probe rays trace one bounce with a two-bounce ceiling
	probeMaxDepth = 2
	probeDepth    = 1

	// maxProbeNesting bounds probes issued from inside probes, keeping the
	// work per shading point at most lights² traces
	maxProbeNesting = 2
)

// LightSamplingIntegrator traces a single scattered path and, near the camera,
// adds a shallow probe toward the center of every light. The probe is an
// unweighted average over lights with no solid angle or visibility weighting.
type LightSamplingIntegrator struct{}

// NewLightSamplingIntegrator creates a new light sampling integrator
func NewLightSamplingIntegrator() *LightSamplingIntegrator {
	return &LightSamplingIntegrator{}
}

// RayColor implements Integrator
func (ls *LightSamplingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, lights []geometry.Shape, maxDepth, depth int, sampler core.Sampler) core.Vec3 {
	return finiteOrBlack(ls.trace(ray, scene, lights, maxDepth, depth, sampler, 0))
}

func (ls *LightSamplingIntegrator) trace(ray core.Ray, scene *scene.Scene, lights []geometry.Shape, maxDepth, depth int, sampler core.Sampler, nesting int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, rayEpsilon, math.MaxFloat64)
	if !isHit {
		return ls.background(ray, scene)
	}

	scatter, ok := hit.Material.Scatter(ray, *hit, sampler)
	if !ok {
		// Absorbed rays are not worth probing toward lights
		return core.Vec3{}
	}

	// Emitting surfaces end the path, so a probe would be discarded
	if scatter.IsEmission() {
		return scatter.Attenuation
	}

	var direct core.Vec3
	if nesting < maxProbeNesting && ls.shouldProbe(hit.Material, lights, maxDepth, depth, sampler) {
		direct = ls.probeLights(hit, scatter.Attenuation, scene, lights, sampler, nesting)
	}

	incoming := ls.trace(*scatter.Scattered, scene, lights, maxDepth, depth-1, sampler, nesting)
	return finiteOrBlack(direct.Add(scatter.Attenuation.MultiplyVec(incoming))).Clamp(0, 1)
}

// shouldProbe draws the probe decision. The draw only happens when there are lights.
func (ls *LightSamplingIntegrator) shouldProbe(mat material.Material, lights []geometry.Shape, maxDepth, depth int, sampler core.Sampler) bool {
	if len(lights) == 0 {
		return false
	}

	chance := lightProbeChance
	if material.IsGlass(mat) {
		chance = glassLightProbeChance
	}

	return sampler.Get1D() > 1.0-float64(len(lights))*chance && depth > maxDepth-2
}

// probeLights casts a ray at each light center and averages the attenuated results
func (ls *LightSamplingIntegrator) probeLights(hit *material.HitRecord, attenuation core.Vec3, scene *scene.Scene, lights []geometry.Shape, sampler core.Sampler, nesting int) core.Vec3 {
	var sum core.Vec3
	for _, light := range lights {
		probe := core.NewRay(hit.Point, light.GetCenter().Subtract(hit.Point))
		radiance := ls.trace(probe, scene, lights, probeMaxDepth, probeDepth, sampler, nesting+1)
		sum = sum.Add(attenuation.MultiplyVec(radiance))
	}
	return sum.Divide(float64(len(lights)))
}

func (ls *LightSamplingIntegrator) background(ray core.Ray, scene *scene.Scene) core.Vec3 {
	if scene.Sky == nil {
		return core.Vec3{}
	}
	return scene.Sky.Emit(ray)
}

// finiteOrBlack collapses NaN or infinite radiance to black
func finiteOrBlack(c core.Vec3) core.Vec3 {
	if !c.IsFinite() {
		return core.Vec3{}
	}
	return c
}
