package scene

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

// Object discriminators
const (
	ObjectSphere    = "sphere"
	ObjectEllipsoid = "ellipsoid"
)

// Material discriminators
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
	MaterialGlass      = "glass"
	MaterialLight      = "light"
)

// Config is the JSON scene description
type Config struct {
	Width           int            `json:"width"`
	Height          int            `json:"height"`
	SamplesPerPixel int            `json:"samples_per_pixel"`
	MaxDepth        int            `json:"max_depth"`
	Sky             *SkyConfig     `json:"sky,omitempty"`
	Camera          CameraConfig   `json:"camera"`
	Objects         []ObjectConfig `json:"objects"`
}

// SkyConfig selects the background. An empty object is the default gradient,
// top/bottom customise the gradient and texture selects an image.
type SkyConfig struct {
	Top     *Color `json:"top,omitempty"`
	Bottom  *Color `json:"bottom,omitempty"`
	Texture string `json:"texture,omitempty"`
}

// CameraConfig describes a look-at camera
type CameraConfig struct {
	LookFrom    Point   `json:"look_from"`
	LookAt      Point   `json:"look_at"`
	Vup         Point   `json:"vup"`
	VFov        float64 `json:"vfov"`                 // Vertical field of view in degrees
	AspectRatio float64 `json:"aspect_ratio"`         // Zero means width/height
	Aperture    float64 `json:"aperture,omitempty"`   // Lens diameter, zero for a pinhole
	FocusDist   float64 `json:"focus_dist,omitempty"` // Zero means the distance to look_at
}

// ObjectConfig describes one surface, tagged by Type
type ObjectConfig struct {
	Type     string         `json:"type"`
	Center   Point          `json:"center"`
	Radius   float64        `json:"radius,omitempty"` // sphere
	Radii    *Point         `json:"radii,omitempty"`  // ellipsoid
	Material MaterialConfig `json:"material"`
}

// MaterialConfig describes a surface material, tagged by Type
type MaterialConfig struct {
	Type              string         `json:"type"`
	Albedo            *Color         `json:"albedo,omitempty"`              // lambertian, metal
	Texture           string         `json:"texture,omitempty"`             // lambertian
	Checker           *CheckerConfig `json:"checker,omitempty"`             // lambertian
	Fuzz              float64        `json:"fuzz,omitempty"`                // metal
	IndexOfRefraction float64        `json:"index_of_refraction,omitempty"` // glass
	Color             *Color         `json:"color,omitempty"`               // light
}

// CheckerConfig describes a procedural checkerboard albedo
type CheckerConfig struct {
	Even   *Color `json:"even,omitempty"`
	Odd    *Color `json:"odd,omitempty"`
	Checks int    `json:"checks"` // Squares across each texture axis
}

// Point is a position or direction written as [x, y, z]
type Point [3]float64

// Vec converts to a vector
func (p Point) Vec() core.Vec3 {
	return core.NewVec3(p[0], p[1], p[2])
}

// PointOf converts a vector to a Point
func PointOf(v core.Vec3) Point {
	return Point{v.X, v.Y, v.Z}
}

// Color is an RGB color written as [r, g, b] or "#rrggbb"
type Color struct {
	R, G, B float64
}

// ColorOf converts a vector to a Color
func ColorOf(v core.Vec3) *Color {
	return &Color{R: v.X, G: v.Y, B: v.Z}
}

// Vec converts to a vector, nil meaning the fallback
func (c *Color) Vec(fallback core.Vec3) core.Vec3 {
	if c == nil {
		return fallback
	}
	return core.NewVec3(c.R, c.G, c.B)
}

// UnmarshalJSON accepts an array or a hex string
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var hex string
		if err := json.Unmarshal(data, &hex); err != nil {
			return err
		}
		parsed, err := colorful.Hex(hex)
		if err != nil {
			return fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		*c = Color{R: parsed.R, G: parsed.G, B: parsed.B}
		return nil
	}

	var rgb [3]float64
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("color must be [r, g, b] or \"#rrggbb\": %w", err)
	}
	*c = Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	return nil
}

// MarshalJSON writes the array form
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}
