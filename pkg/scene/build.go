package scene

import (
	"fmt"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/geometry"
	"github.com/qiujiangkun/raytracer/pkg/lights"
	"github.com/qiujiangkun/raytracer/pkg/loaders"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

var white = core.NewVec3(1, 1, 1)

// Build turns a validated config into a renderable scene. Images referenced
// more than once are decoded once.
func (c *Config) Build() (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	images := map[string]*loaders.ImageData{}
	loadImage := func(path string) (*loaders.ImageData, error) {
		if img, ok := images[path]; ok {
			return img, nil
		}
		img, err := loaders.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		images[path] = img
		return img, nil
	}

	sky, err := c.buildSky(loadImage)
	if err != nil {
		return nil, err
	}

	shapes := make([]geometry.Shape, 0, len(c.Objects))
	for i, obj := range c.Objects {
		mat, err := obj.Material.build(loadImage)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		switch obj.Type {
		case ObjectSphere:
			shapes = append(shapes, geometry.NewSphere(obj.Center.Vec(), obj.Radius, mat))
		case ObjectEllipsoid:
			shapes = append(shapes, geometry.NewEllipsoid(obj.Center.Vec(), obj.Radii.Vec(), mat))
		}
	}

	s := &Scene{
		Camera: geometry.NewCamera(c.cameraConfig()),
		Shapes: shapes,
		Sky:    sky,
		SamplingConfig: SamplingConfig{
			Width:           c.Width,
			Height:          c.Height,
			SamplesPerPixel: c.SamplesPerPixel,
			MaxDepth:        c.MaxDepth,
		},
	}
	s.Preprocess()
	return s, nil
}

func (c *Config) cameraConfig() geometry.CameraConfig {
	cam := c.Camera

	aspect := cam.AspectRatio
	if aspect == 0 {
		aspect = float64(c.Width) / float64(c.Height)
	}

	focus := cam.FocusDist
	if focus == 0 {
		focus = cam.LookFrom.Vec().Subtract(cam.LookAt.Vec()).Length()
	}

	return geometry.CameraConfig{
		Center:        cam.LookFrom.Vec(),
		LookAt:        cam.LookAt.Vec(),
		Up:            cam.Vup.Vec(),
		VFov:          cam.VFov,
		AspectRatio:   aspect,
		Aperture:      cam.Aperture,
		FocusDistance: focus,
	}
}

func (c *Config) buildSky(loadImage func(string) (*loaders.ImageData, error)) (lights.Sky, error) {
	if c.Sky == nil {
		return lights.BlackSky{}, nil
	}
	if c.Sky.Texture != "" {
		img, err := loadImage(c.Sky.Texture)
		if err != nil {
			return nil, fmt.Errorf("sky: %w", err)
		}
		return img.Sky(), nil
	}

	def := lights.NewDefaultGradientSky()
	return lights.NewGradientSky(c.Sky.Bottom.Vec(def.Bottom), c.Sky.Top.Vec(def.Top)), nil
}

func (m MaterialConfig) build(loadImage func(string) (*loaders.ImageData, error)) (material.Material, error) {
	switch m.Type {
	case MaterialLambertian:
		if m.Texture != "" {
			img, err := loadImage(m.Texture)
			if err != nil {
				return nil, err
			}
			return material.NewTexturedLambertian(img.Texture()), nil
		}
		if m.Checker != nil {
			checker := material.NewCheckerboardTexture(m.Checker.Checks, m.Checker.Even.Vec(white), m.Checker.Odd.Vec(core.Vec3{}))
			return material.NewTexturedLambertian(checker), nil
		}
		return material.NewLambertian(m.Albedo.Vec(white)), nil
	case MaterialMetal:
		return material.NewMetal(m.Albedo.Vec(white), m.Fuzz), nil
	case MaterialGlass:
		return material.NewDielectric(m.IndexOfRefraction), nil
	case MaterialLight:
		return material.NewLight(m.Color.Vec(white)), nil
	}
	return nil, invalid("unknown material type %q", m.Type)
}
