package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/geometry"
	"github.com/qiujiangkun/raytracer/pkg/integrator"
	"github.com/qiujiangkun/raytracer/pkg/scene"
)

// bytesPerPixel is the size of one 8-bit RGB pixel
const bytesPerPixel = 3

// Raytracer renders a scene into an 8-bit RGB buffer, one task per image row
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	workers    int
	logger     core.Logger
	seed       int64
}

// Option configures a Raytracer
type Option func(*Raytracer)

// WithWorkers limits the number of rows rendered at once. Non-positive means one per CPU.
func WithWorkers(workers int) Option {
	return func(rt *Raytracer) {
		if workers > 0 {
			rt.workers = workers
		}
	}
}

// WithLogger sets the logger for render output
func WithLogger(logger core.Logger) Option {
	return func(rt *Raytracer) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithSeed makes a render reproducible
func WithSeed(seed int64) Option {
	return func(rt *Raytracer) {
		rt.seed = seed
	}
}

// WithIntegrator replaces the light transport algorithm
func WithIntegrator(i integrator.Integrator) Option {
	return func(rt *Raytracer) {
		if i != nil {
			rt.integrator = i
		}
	}
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, opts ...Option) *Raytracer {
	rt := &Raytracer{
		scene:      s,
		integrator: integrator.NewLightSamplingIntegrator(),
		workers:    runtime.NumCPU(),
		logger:     NewDefaultLogger(),
		seed:       time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// RenderPixels traces every pixel and returns the width·height·3 byte buffer,
// rows top first.
func (rt *Raytracer) RenderPixels(ctx context.Context) ([]byte, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	cfg := rt.scene.SamplingConfig
	width, height := cfg.Width, cfg.Height
	rowBytes := width * bytesPerPixel
	pixels := make([]byte, height*rowBytes)

	lights := geometry.FindLights(rt.scene.Shapes)

	// Every row gets its own generator, seeded before the fork
	seeds := rand.New(rand.NewSource(rt.seed))
	rowSeeds := make([]int64, height)
	for y := range rowSeeds {
		rowSeeds[y] = seeds.Int63()
	}

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.workers)
	for y := 0; y < height; y++ {
		row := pixels[y*rowBytes : (y+1)*rowBytes]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rt.renderRow(row, y, lights, core.NewSeededSampler(rowSeeds[y]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	stats := RenderStats{
		Width:        width,
		Height:       height,
		TotalPixels:  width * height,
		TotalSamples: width * height * cfg.SamplesPerPixel,
		Rows:         height,
		Workers:      rt.workers,
		Primitives:   rt.scene.GetPrimitiveCount(),
		Lights:       len(lights),
		Duration:     time.Since(start),
	}
	return pixels, stats, nil
}

// renderRow fills one row of the buffer
func (rt *Raytracer) renderRow(row []byte, y int, lights []geometry.Shape, sampler core.Sampler) {
	cfg := rt.scene.SamplingConfig
	width := float64(cfg.Width)
	height := float64(cfg.Height)

	for x := 0; x < cfg.Width; x++ {
		var sum core.Vec3
		for s := 0; s < cfg.SamplesPerPixel; s++ {
			u := (float64(x) + sampler.Get1D()) / (width - 1)
			v := (height - (float64(y) + sampler.Get1D())) / (height - 1)

			ray := rt.scene.Camera.GetRay(u, v, sampler)
			sum = sum.Add(rt.integrator.RayColor(ray, rt.scene, lights, cfg.MaxDepth, cfg.MaxDepth, sampler))
		}

		r, g, b := toRGB8(sum.Divide(float64(cfg.SamplesPerPixel)))
		row[x*bytesPerPixel] = r
		row[x*bytesPerPixel+1] = g
		row[x*bytesPerPixel+2] = b
	}
}

// toRGB8 applies gamma 2 and quantizes a linear color
func toRGB8(c core.Vec3) (uint8, uint8, uint8) {
	if !c.IsFinite() {
		return 0, 0, 0
	}
	encoded := c.Clamp(0, 1).Sqrt()
	return colorful.Color{R: encoded.X, G: encoded.Y, B: encoded.Z}.RGB255()
}

func (rt *Raytracer) validate() error {
	if rt.scene == nil || rt.scene.Camera == nil {
		return fmt.Errorf("%w: scene has no camera", scene.ErrInvalidConfig)
	}
	cfg := rt.scene.SamplingConfig
	if cfg.Width < 2 || cfg.Height < 2 {
		return fmt.Errorf("%w: image must be at least 2x2, got %dx%d", scene.ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.SamplesPerPixel <= 0 || cfg.MaxDepth <= 0 {
		return fmt.Errorf("%w: samples and depth must be positive", scene.ErrInvalidConfig)
	}
	return nil
}

// Render traces the scene, logs the frame time and writes a PNG to path
func Render(ctx context.Context, path string, s *scene.Scene, opts ...Option) (RenderStats, error) {
	rt := NewRaytracer(s, opts...)

	pixels, stats, err := rt.RenderPixels(ctx)
	if err != nil {
		return stats, err
	}
	rt.logger.Printf("Frame time: %dms\n", stats.Duration.Milliseconds())

	if err := WritePNG(path, pixels, stats.Width, stats.Height); err != nil {
		return stats, err
	}
	return stats, nil
}
