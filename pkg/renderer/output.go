package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// ErrOutput is wrapped by failures to write the rendered image
var ErrOutput = errors.New("cannot write output image")

// WritePNG encodes an 8-bit RGB buffer, rows top first, as a PNG file
func WritePNG(path string, pixels []byte, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height*bytesPerPixel {
		return fmt.Errorf("%w: buffer of %d bytes does not match %dx%d", ErrOutput, len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = pixels[i*bytesPerPixel]
		img.Pix[i*4+1] = pixels[i*bytesPerPixel+1]
		img.Pix[i*4+2] = pixels[i*bytesPerPixel+2]
		img.Pix[i*4+3] = 0xff
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %w", ErrOutput, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrOutput, path, err)
	}
	return nil
}
