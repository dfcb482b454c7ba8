package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

// renderOverrides holds the render settings given on the command line.
// Zero values keep the scene's recommended setting.
type renderOverrides struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxBounces      int
	BouncesSet      bool
}

// RenderFrame renders a single still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	// A missing .env file is fine; the environment may already be set up
	if envFile := ctx.String("env"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warningf("could not load %s: %v", envFile, err)
		}
	}

	sc, err := resolveScene(ctx.String("scene"), ctx.String("file"), ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	config := buildRenderConfig(sc.SamplingConfig, renderOverrides{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxBounces:      ctx.Int("bounces"),
		BouncesSet:      ctx.IsSet("bounces"),
	})
	config.Seed = ctx.Uint64("seed")
	config.NumWorkers = ctx.Int("workers")
	config.TileSize = ctx.Int("tile-size")

	rt, err := renderer.NewRaytracer(sc, config)
	if err != nil {
		return err
	}

	// Ctrl-C aborts the render instead of killing the process mid-write
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q", sc.Name)
	img, stats, err := rt.RenderContext(renderCtx)
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	frame := img.ToRGBA()
	outFile := ctx.String("out")
	if err := output.Save(outFile, frame); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outFile)

	if maxDim := ctx.Int("thumbnail"); maxDim > 0 {
		thumbFile := output.ThumbnailPath(outFile)
		if err := output.Save(thumbFile, output.Thumbnail(frame, maxDim)); err != nil {
			return err
		}
		logger.Noticef("wrote thumbnail to %s", thumbFile)
	}

	if key := ctx.String("upload"); key != "" {
		format, err := output.FormatFromPath(outFile)
		if err != nil {
			return err
		}
		data, err := output.EncodeBytes(frame, format)
		if err != nil {
			return err
		}

		uploader, err := output.NewS3Uploader(output.S3ConfigFromEnv())
		if err != nil {
			return err
		}
		if err := uploader.Upload(context.Background(), key, data, format.ContentType()); err != nil {
			return err
		}
		logger.Noticef("uploaded %s to s3://%s (%d bytes)", key, uploader.Bucket(), len(data))
	}

	return nil
}

// resolveScene picks the scene from --file when given, otherwise by name
func resolveScene(name, file, dir string) (*scene.Scene, error) {
	if file != "" {
		return scene.NewJSONScene(file)
	}
	if name == "" {
		return nil, fmt.Errorf("no scene given; use --scene or --file")
	}
	return scene.CreateScene(name, dir)
}

// buildRenderConfig starts from the scene's recommended settings and applies
// the command line overrides
func buildRenderConfig(recommended scene.SamplingConfig, overrides renderOverrides) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = recommended.Width
	config.Height = recommended.Height
	config.SamplesPerPixel = recommended.SamplesPerPixel
	config.MaxBounces = recommended.MaxBounces

	if overrides.Width != 0 {
		config.Width = overrides.Width
	}
	if overrides.Height != 0 {
		config.Height = overrides.Height
	}
	if overrides.SamplesPerPixel != 0 {
		config.SamplesPerPixel = overrides.SamplesPerPixel
	}
	if overrides.BouncesSet {
		config.MaxBounces = overrides.MaxBounces
	}
	return config
}
