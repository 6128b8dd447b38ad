package geometry

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// World is an ordered collection of shapes
type World []Shape

// Hit returns the closest intersection across all shapes.
// Order only affects which of two equal-t hits wins.
func (w World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// FindLights returns the shapes whose material is the emissive light material
func FindLights(shapes []Shape) []Shape {
	var lights []Shape
	for _, shape := range shapes {
		if material.IsLight(shape.GetMaterial()) {
			lights = append(lights, shape)
		}
	}
	return lights
}
