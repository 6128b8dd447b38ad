package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width        int           // Image width
	Height       int           // Image height
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Rows         int           // Number of row tasks
	Workers      int           // Maximum rows rendered concurrently
	Primitives   int           // Shapes in the scene
	Lights       int           // Shapes with the light material
	Duration     time.Duration // Wall time of the parallel phase
}

// SamplesPerSecond returns camera rays traced per second
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
