package integrator

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/geometry"
	"github.com/qiujiangkun/raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray. depth is the remaining
	// bounce budget and maxDepth the budget the trace started with. lights are
	// the emissive shapes of the scene.
	RayColor(ray core.Ray, scene *scene.Scene, lights []geometry.Shape, maxDepth, depth int, sampler core.Sampler) core.Vec3
}
