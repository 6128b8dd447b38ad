package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/renderer"
	"github.com/qiujiangkun/raytracer/pkg/scene"
)

var version = "dev"

// renderOptions holds command line overrides. Zero keeps the config value.
type renderOptions struct {
	width   int
	height  int
	samples int
	depth   int
	workers int
	seed    int64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(renderer.NewDefaultLogger()), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger core.Logger) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "raytracer <config.json> <output.png>",
		Short: "Render a JSON scene description to a PNG image",
		Long: "Render spheres and ellipsoids made of lambertian, metal, glass and light materials.\n" +
			"Rows are traced in parallel and the result is written as an 8-bit RGB PNG.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], args[1], opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", 0, "override image width")
	flags.IntVar(&opts.height, "height", 0, "override image height")
	flags.IntVar(&opts.samples, "samples", 0, "override samples per pixel")
	flags.IntVar(&opts.depth, "depth", 0, "override maximum bounce depth")
	flags.IntVar(&opts.workers, "workers", 0, "rows rendered in parallel (0 = one per CPU)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for a reproducible render (0 = time based)")

	cmd.AddCommand(newInitCmd(logger))
	return cmd
}

func newInitCmd(logger core.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "init <config.json>",
		Short:        "Write a starter scene config",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scene.Save(args[0], scene.NewDefaultConfig()); err != nil {
				return err
			}
			logger.Printf("Wrote starter scene to %s\n", args[0])
			return nil
		},
	}
}

func runRender(ctx context.Context, configPath, outputPath string, opts renderOptions, logger core.Logger) error {
	if opts.width < 0 || opts.height < 0 || opts.samples < 0 || opts.depth < 0 || opts.workers < 0 {
		return fmt.Errorf("%w: overrides must not be negative", scene.ErrInvalidConfig)
	}

	cfg, err := scene.Load(configPath)
	if err != nil {
		return err
	}

	scene.Overrides{
		Width:           opts.width,
		Height:          opts.height,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
	}.Apply(cfg)

	s, err := cfg.Build()
	if err != nil {
		return err
	}

	logger.Printf("Rendering %s -> %s\n", configPath, outputPath)

	renderOpts := []renderer.Option{
		renderer.WithWorkers(opts.workers),
		renderer.WithLogger(logger),
	}
	if opts.seed != 0 {
		renderOpts = append(renderOpts, renderer.WithSeed(opts.seed))
	}

	stats, err := renderer.Render(ctx, outputPath, s, renderOpts...)
	if err != nil {
		return err
	}

	logger.Printf("Rendered %dx%d, %d primitives, %d lights, %d samples on %d workers (%.0f samples/s)\n",
		stats.Width, stats.Height, stats.Primitives, stats.Lights, stats.TotalSamples, stats.Workers, stats.SamplesPerSecond())
	return nil
}
