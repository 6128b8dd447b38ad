package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/lights"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// ImageData is a decoded image as linear [0,1] colors, row-major with the top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return FromImage(img), nil
}

// FromImage converts any decoded image. Fully transparent pixels become black.
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				continue
			}
			pixels[y*width+x] = core.NewVec3(c.R, c.G, c.B)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}
}

// Texture wraps the image as a surface texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// Sky wraps the image as a background
func (d *ImageData) Sky() *lights.TextureSky {
	return lights.NewTextureSky(d.Width, d.Height, d.Pixels)
}
