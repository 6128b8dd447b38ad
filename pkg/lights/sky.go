package lights

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

// Sky provides background radiance for rays that escape the scene
type Sky interface {
	Emit(ray core.Ray) core.Vec3
}

// GradientSky blends vertically between two colors based on ray direction
type GradientSky struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// NewGradientSky creates a gradient sky
func NewGradientSky(bottom, top core.Vec3) *GradientSky {
	return &GradientSky{Bottom: bottom, Top: top}
}

// NewDefaultGradientSky creates the white to light blue daylight gradient
func NewDefaultGradientSky() *GradientSky {
	return NewGradientSky(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Emit implements Sky
func (g *GradientSky) Emit(ray core.Ray) core.Vec3 {
	t := clamp01(0.5 * (ray.Direction.Normalize().Y + 1.0))

	blended := toColor(g.Bottom).BlendRgb(toColor(g.Top), t)
	return core.NewVec3(blended.R, blended.G, blended.B)
}

// TextureSky looks up an image by ray direction.
// Horizontal position follows the x component and vertical position the y component.
type TextureSky struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first, channels in [0,1]
}

// NewTextureSky creates a texture sky from decoded image pixels
func NewTextureSky(width, height int, pixels []core.Vec3) *TextureSky {
	return &TextureSky{Width: width, Height: height, Pixels: pixels}
}

// textureSkyScale dims the image so it lights the scene without washing it out
const textureSkyScale = 0.7

// Emit implements Sky
func (s *TextureSky) Emit(ray core.Ray) core.Vec3 {
	if s.Width <= 0 || s.Height <= 0 || len(s.Pixels) < s.Width*s.Height {
		return core.Vec3{}
	}

	unit := ray.Direction.Normalize()
	t := clamp01(0.5 * (unit.Y + 1.0))
	u := clamp01(0.5 * (unit.X + 1.0))

	x := int(u * float64(s.Width-1))
	y := int((1.0 - t) * float64(s.Height-1))

	return s.Pixels[y*s.Width+x].Multiply(textureSkyScale)
}

// BlackSky emits nothing; scenes without a sky are lit only by their lights
type BlackSky struct{}

// Emit implements Sky
func (BlackSky) Emit(ray core.Ray) core.Vec3 {
	return core.Vec3{}
}

func toColor(v core.Vec3) colorful.Color {
	return colorful.Color{R: v.X, G: v.Y, B: v.Z}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
