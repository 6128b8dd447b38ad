package scene

import (
	"fmt"
	"math"

	"github.com/qiujiangkun/raytracer/pkg/material"
)

// Validate checks that the config describes a renderable scene
func (c *Config) Validate() error {
	if c.Width <= 1 || c.Height <= 1 {
		return invalid("image must be at least 2x2, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return invalid("samples_per_pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return invalid("max_depth must be positive, got %d", c.MaxDepth)
	}

	if err := c.Camera.validate(); err != nil {
		return err
	}

	if c.Sky != nil && c.Sky.Texture != "" && (c.Sky.Top != nil || c.Sky.Bottom != nil) {
		return invalid("sky takes either a texture or gradient colors, not both")
	}

	for i, obj := range c.Objects {
		if err := obj.validate(); err != nil {
			return fmt.Errorf("objects[%d]: %w", i, err)
		}
	}
	return nil
}

func (cam CameraConfig) validate() error {
	for name, p := range map[string]Point{"look_from": cam.LookFrom, "look_at": cam.LookAt, "vup": cam.Vup} {
		if !p.Vec().IsFinite() {
			return invalid("camera %s must be finite, got %v", name, p)
		}
	}

	view := cam.LookFrom.Vec().Subtract(cam.LookAt.Vec())
	if view.NearZero() {
		return invalid("camera look_from and look_at must differ")
	}
	if view.Cross(cam.Vup.Vec()).NearZero() {
		return invalid("camera vup must not be parallel to the view direction")
	}
	if !(cam.VFov > 0 && cam.VFov < 180) {
		return invalid("camera vfov must be in (0, 180), got %v", cam.VFov)
	}
	if cam.AspectRatio < 0 || math.IsInf(cam.AspectRatio, 0) || math.IsNaN(cam.AspectRatio) {
		return invalid("camera aspect_ratio must be positive, got %v", cam.AspectRatio)
	}
	if cam.Aperture < 0 || cam.FocusDist < 0 {
		return invalid("camera aperture and focus_dist must not be negative")
	}
	return nil
}

func (o ObjectConfig) validate() error {
	if !o.Center.Vec().IsFinite() {
		return invalid("center must be finite, got %v", o.Center)
	}

	switch o.Type {
	case ObjectSphere:
		if !(o.Radius > 0) || math.IsInf(o.Radius, 0) {
			return invalid("sphere radius must be positive and finite, got %v", o.Radius)
		}
	case ObjectEllipsoid:
		if o.Radii == nil {
			return invalid("ellipsoid requires radii")
		}
		for _, r := range o.Radii {
			if !(r > 0) || math.IsInf(r, 0) {
				return invalid("ellipsoid radii must be positive and finite, got %v", *o.Radii)
			}
		}
	default:
		return invalid("unknown object type %q", o.Type)
	}

	return o.Material.validate()
}

func (m MaterialConfig) validate() error {
	switch m.Type {
	case MaterialLambertian:
		sources := 0
		for _, set := range []bool{m.Albedo != nil, m.Texture != "", m.Checker != nil} {
			if set {
				sources++
			}
		}
		if sources != 1 {
			return invalid("lambertian requires exactly one of albedo, texture or checker")
		}
		if m.Checker != nil && (m.Checker.Checks <= 0 || m.Checker.Checks > material.MaxCheckerChecks) {
			return invalid("checker checks must be in [1, %d], got %d", material.MaxCheckerChecks, m.Checker.Checks)
		}
	case MaterialMetal:
		if m.Albedo == nil {
			return invalid("metal requires albedo")
		}
		if m.Fuzz < 0 || m.Fuzz > 1 {
			return invalid("metal fuzz must be in [0, 1], got %v", m.Fuzz)
		}
	case MaterialGlass:
		if !(m.IndexOfRefraction > 0) || math.IsInf(m.IndexOfRefraction, 0) {
			return invalid("glass index_of_refraction must be positive, got %v", m.IndexOfRefraction)
		}
	case MaterialLight:
	default:
		return invalid("unknown material type %q", m.Type)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
