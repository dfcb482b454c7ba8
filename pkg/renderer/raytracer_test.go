package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func testConfig(width, height, spp, bounces int) Config {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = spp
	config.MaxBounces = bounces
	config.Logger = log.Discard()
	return config
}

func renderWith(t *testing.T, sc *scene.Scene, config Config) (*Image, RenderStats) {
	t.Helper()
	rt, err := NewRaytracer(sc, config)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	img, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return img, stats
}

func TestRender_InvalidParameters(t *testing.T) {
	broken := scene.NewEmptyScene()
	broken.AddSphere(geometry.NewSphere(core.Vec3{}, 0, material.NewMaterial(core.NewVec3(1, 1, 1), 0, 0)))

	tests := []struct {
		name    string
		scene   *scene.Scene
		width   int
		height  int
		spp     int
		bounces int
	}{
		{"zero width", scene.NewSingleSphereScene(), 0, 10, 1, 1},
		{"negative height", scene.NewSingleSphereScene(), 10, -1, 1, 1},
		{"zero samples", scene.NewSingleSphereScene(), 10, 10, 0, 1},
		{"negative bounces", scene.NewSingleSphereScene(), 10, 10, 1, -1},
		{"nil scene", nil, 10, 10, 1, 1},
		{"invalid sphere", broken, 10, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render(tt.scene, tt.width, tt.height, tt.spp, tt.bounces)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
			if img != nil {
				t.Error("Expected no image on error")
			}
		})
	}
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	sc := scene.NewSingleSphereScene()

	config := testConfig(10, 10, 1, 1)
	config.NumWorkers = -1
	if _, err := NewRaytracer(sc, config); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for negative workers, got %v", err)
	}

	config = testConfig(10, 10, 1, 1)
	config.TileSize = -8
	if _, err := NewRaytracer(sc, config); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for negative tile size, got %v", err)
	}
}

func TestRender_Deterministic(t *testing.T) {
	sc := scene.NewSingleSphereScene()

	base := testConfig(32, 24, 1, 1)
	base.NumWorkers = 1
	reference, _ := renderWith(t, sc, base)

	variants := []struct {
		name     string
		workers  int
		tileSize int
	}{
		{"same settings", 1, 32},
		{"four workers", 4, 32},
		{"small tiles", 3, 5},
		{"single pixel tiles", 8, 1},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			config := base
			config.NumWorkers = v.workers
			config.TileSize = v.tileSize
			img, _ := renderWith(t, sc, config)

			for i := range reference.Pix {
				if img.Pix[i] != reference.Pix[i] {
					t.Fatalf("Pixel %d differs: %v vs %v", i, img.Pix[i], reference.Pix[i])
				}
			}
		})
	}
}

func TestRender_SeedChangesImage(t *testing.T) {
	sc := scene.NewSingleSphereScene()

	first, _ := renderWith(t, sc, testConfig(16, 12, 2, 3))
	config := testConfig(16, 12, 2, 3)
	config.Seed = 7
	second, _ := renderWith(t, sc, config)

	same := true
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected a different seed to change the image")
	}
}

func TestRender_EmptySceneIsSky(t *testing.T) {
	sc := scene.NewEmptyScene()
	config := testConfig(20, 10, 1, 1)
	img, _ := renderWith(t, sc, config)

	aspect := float64(config.Width) / float64(config.Height)
	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			// Reproduce the pixel's jittered camera ray
			jitter := pixelSampler(config.Seed, config.Width, x, y).Get2D()
			u := (float64(x) + jitter.X) / float64(config.Width)
			v := (float64(y) + jitter.Y) / float64(config.Height)
			ray := sc.Camera.GetRay(u, v, aspect)

			expected := ToneMap(integrator.SkyColor(ray.Direction))
			if got := img.At(x, y); got != expected {
				t.Fatalf("Pixel (%d,%d) = %v, want sky %v", x, y, got, expected)
			}
		}
	}

	// Row 0 is the bottom of the view and looks further down into the whiter sky
	if img.At(10, 0).X <= img.At(10, 9).X {
		t.Errorf("Expected bottom row to be whiter than top row: %v vs %v", img.At(10, 0), img.At(10, 9))
	}
}

func TestRender_ZeroBouncesIsBlack(t *testing.T) {
	img, err := Render(scene.NewDefaultScene(), 16, 12, 2, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, c := range img.Pix {
		if c != (core.Vec3{}) {
			t.Fatalf("Pixel %d = %v, want black", i, c)
		}
	}
}

func TestRender_Stats(t *testing.T) {
	config := testConfig(40, 30, 3, 2)
	config.TileSize = 16
	config.NumWorkers = 2
	img, stats := renderWith(t, scene.NewSingleSphereScene(), config)

	if img.Width != 40 || img.Height != 30 || len(img.Pix) != 1200 {
		t.Fatalf("Unexpected image size %dx%d (%d pixels)", img.Width, img.Height, len(img.Pix))
	}
	if stats.TotalPixels != 1200 || stats.TotalSamples != 3600 {
		t.Errorf("Unexpected sample counts %+v", stats)
	}
	if stats.AverageSamples() != 3 {
		t.Errorf("Expected 3 samples per pixel, got %v", stats.AverageSamples())
	}
	if stats.Tiles != 6 || stats.Workers != 2 {
		t.Errorf("Expected 6 tiles on 2 workers, got %d on %d", stats.Tiles, stats.Workers)
	}
	for i, c := range img.Pix {
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			t.Fatalf("Pixel %d out of range: %v", i, c)
		}
	}
}

func TestRenderContext_Cancelled(t *testing.T) {
	rt, err := NewRaytracer(scene.NewSingleSphereScene(), testConfig(64, 48, 1, 1))
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := rt.RenderContext(ctx)
	if !errors.Is(err, ErrInterrupted) {
		t.Errorf("Expected ErrInterrupted, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image after cancellation")
	}
}
