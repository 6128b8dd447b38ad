package scene

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/geometry"
	"github.com/qiujiangkun/raytracer/pkg/lights"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	Shapes         []geometry.Shape // Objects in the scene, lights included
	Sky            lights.Sky       // Background radiance for escaping rays
	SamplingConfig SamplingConfig
	BVH            *geometry.BVH // Acceleration structure, built by Preprocess
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Preprocess builds the acceleration structure. Shapes must not change afterwards.
func (s *Scene) Preprocess() {
	s.BVH = geometry.NewBVH(s.Shapes)
}

// Hit returns the closest intersection, falling back to a linear scan
// when the scene has not been preprocessed
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if s.BVH != nil {
		return s.BVH.Hit(ray, tMin, tMax)
	}
	return geometry.World(s.Shapes).Hit(ray, tMin, tMax)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
