package scene

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
)

// NewDefaultConfig returns a starter scene: a few spheres of each material on a
// large checkered ground sphere, an ellipsoid, one spherical light and the daylight sky.
func NewDefaultConfig() *Config {
	lambertian := func(albedo core.Vec3) MaterialConfig {
		return MaterialConfig{Type: MaterialLambertian, Albedo: ColorOf(albedo)}
	}
	metal := func(albedo core.Vec3, fuzz float64) MaterialConfig {
		return MaterialConfig{Type: MaterialMetal, Albedo: ColorOf(albedo), Fuzz: fuzz}
	}
	glass := MaterialConfig{Type: MaterialGlass, IndexOfRefraction: 1.5}

	sphere := func(center core.Vec3, radius float64, mat MaterialConfig) ObjectConfig {
		return ObjectConfig{Type: ObjectSphere, Center: PointOf(center), Radius: radius, Material: mat}
	}

	ellipsoidRadii := Point{0.35, 0.2, 0.2}

	return &Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Sky:             &SkyConfig{},
		Camera: CameraConfig{
			LookFrom:    Point{0, 0.75, 2},
			LookAt:      Point{0, 0.5, -1},
			Vup:         Point{0, 1, 0},
			VFov:        40,
			AspectRatio: 16.0 / 9.0,
		},
		Objects: []ObjectConfig{
			sphere(core.NewVec3(0, -1000, -1), 1000, MaterialConfig{
				Type: MaterialLambertian,
				Checker: &CheckerConfig{
					Even:   ColorOf(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)),
					Odd:    ColorOf(core.NewVec3(0.2, 0.3, 0.1)),
					Checks: 64,
				},
			}),
			sphere(core.NewVec3(0, 0.5, -1), 0.5, lambertian(core.NewVec3(0.65, 0.25, 0.2))),
			sphere(core.NewVec3(-1, 0.5, -1), 0.5, metal(core.NewVec3(0.8, 0.8, 0.8), 0.0)),
			sphere(core.NewVec3(1, 0.5, -1), 0.5, metal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
			sphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),
			{
				Type:     ObjectEllipsoid,
				Center:   Point{-0.5, 0.2, -0.4},
				Radii:    &ellipsoidRadii,
				Material: lambertian(core.NewVec3(0.1, 0.2, 0.5)),
			},
			sphere(core.NewVec3(30, 30.5, 15), 10, MaterialConfig{Type: MaterialLight, Color: ColorOf(core.NewVec3(15.0, 14.0, 13.0))}),
		},
	}
}
