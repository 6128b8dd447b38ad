package material

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
)

// checkerResolution is the pixel size of generated checkerboards
const checkerResolution = 512

// MaxCheckerChecks is the most checks per axis a checkerboard can hold,
// one pixel per check
const MaxCheckerChecks = checkerResolution

// NewCheckerboardTexture creates a checkerboard with checks squares across
// each texture axis, starting with color1 in the top left corner
func NewCheckerboardTexture(checks int, color1, color2 core.Vec3) *ImageTexture {
	checks = min(max(checks, 1), MaxCheckerChecks)
	checkSize := checkerResolution / checks
	size := checkSize * checks
	pixels := make([]core.Vec3, size*size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/checkSize+y/checkSize)%2 == 0 {
				pixels[y*size+x] = color1
			} else {
				pixels[y*size+x] = color2
			}
		}
	}

	return NewImageTexture(size, size, pixels)
}
