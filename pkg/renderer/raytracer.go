package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width           int        // Image width in pixels
	Height          int        // Image height in pixels
	SamplesPerPixel int        // Number of camera rays per pixel
	MaxBounces      int        // Maximum path length
	Seed            uint64     // Seed for the per-pixel generators
	NumWorkers      int        // Number of parallel workers (0 = use CPU count)
	TileSize        int        // Edge length of a square tile (0 = default)
	Logger          log.Logger // Progress logger (nil = "renderer" module logger)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 8,
		MaxBounces:      5,
		Seed:            42,
		NumWorkers:      0,
		TileSize:        32,
	}
}

// Validate rejects configurations that cannot produce an image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", core.ErrInvalidParameter, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", core.ErrInvalidParameter, c.SamplesPerPixel)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("%w: max bounces must not be negative, got %d", core.ErrInvalidParameter, c.MaxBounces)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", core.ErrInvalidParameter, c.NumWorkers)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("%w: tile size must not be negative, got %d", core.ErrInvalidParameter, c.TileSize)
	}
	return nil
}

// Raytracer renders a scene into a tone-mapped image
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer validates the scene and configuration and creates a raytracer
func NewRaytracer(sc *scene.Scene, config Config) (*Raytracer, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: scene is nil", core.ErrInvalidParameter)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if config.TileSize == 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New("renderer")
	}

	return &Raytracer{
		scene:      sc,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxBounces),
		logger:     logger,
	}, nil
}

// Render renders the whole image
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	return rt.RenderContext(context.Background())
}

// RenderContext renders the whole image in parallel tiles. If ctx is
// cancelled, tiles that have not started are skipped and ErrInterrupted is
// returned without an image.
func (rt *Raytracer) RenderContext(ctx context.Context) (*Image, RenderStats, error) {
	startTime := time.Now()
	cfg := rt.config

	img := NewImage(cfg.Width, cfg.Height)
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize)
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, img, cfg.SamplesPerPixel, cfg.Seed)
	workerPool := NewWorkerPool(ctx, tileRenderer, len(tiles), cfg.NumWorkers)

	rt.logger.Infof("Rendering %q at %dx%d, %d samples/pixel, %d bounces, %d tiles on %d workers",
		rt.scene.Name, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxBounces, len(tiles), workerPool.GetNumWorkers())

	workerPool.Start()
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	stats := RenderStats{
		Width:           cfg.Width,
		Height:          cfg.Height,
		TotalPixels:     cfg.Width * cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxBounces:      cfg.MaxBounces,
		Tiles:           len(tiles),
		Workers:         workerPool.GetNumWorkers(),
		Seed:            cfg.Seed,
	}

	// Drain every result so the pool can shut down cleanly
	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = ErrPoolShutdown
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		stats.TotalSamples += result.Samples
		rt.logger.Debugf("Tile %d/%d done (%v)", i+1, len(tiles), tiles[result.TaskID].Bounds)
	}
	workerPool.Stop()

	if renderErr != nil {
		rt.logger.Warningf("Render of %q stopped: %v", rt.scene.Name, renderErr)
		return nil, RenderStats{}, renderErr
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Infof("Render of %q finished in %v (%d samples)", rt.scene.Name, stats.Duration, stats.TotalSamples)

	return img, stats, nil
}

// Render renders scene with the default seed and worker count. All
// parameters are checked before any sampling happens.
func Render(sc *scene.Scene, width, height, samplesPerPixel, maxBounces int) (*Image, error) {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samplesPerPixel
	config.MaxBounces = maxBounces

	rt, err := NewRaytracer(sc, config)
	if err != nil {
		return nil, err
	}

	img, _, err := rt.Render()
	return img, err
}
