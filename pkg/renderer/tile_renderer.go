package renderer

import (
	"image"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene           *scene.Scene
	integrator      integrator.Integrator
	image           *Image
	samplesPerPixel int
	seed            uint64
	aspectRatio     float64
}

// NewTileRenderer creates a tile renderer that writes into img. Tiles never
// overlap, so one renderer can be shared by every worker.
func NewTileRenderer(sc *scene.Scene, integratorInst integrator.Integrator, img *Image, samplesPerPixel int, seed uint64) *TileRenderer {
	return &TileRenderer{
		scene:           sc,
		integrator:      integratorInst,
		image:           img,
		samplesPerPixel: samplesPerPixel,
		seed:            seed,
		aspectRatio:     float64(img.Width) / float64(img.Height),
	}
}

// RenderTileBounds renders every pixel within bounds and returns the number
// of samples taken
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) int {
	samples := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			tr.image.Set(i, j, ToneMap(tr.samplePixel(i, j)))
			samples += tr.samplesPerPixel
		}
	}
	return samples
}

// samplePixel averages samplesPerPixel jittered paths through pixel (i, j)
func (tr *TileRenderer) samplePixel(i, j int) core.Vec3 {
	sampler := pixelSampler(tr.seed, tr.image.Width, i, j)
	camera := tr.scene.Camera
	width := float64(tr.image.Width)
	height := float64(tr.image.Height)

	colorAccum := core.Vec3{}
	for s := 0; s < tr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := (float64(i) + jitter.X) / width
		v := (float64(j) + jitter.Y) / height

		ray := camera.GetRay(u, v, tr.aspectRatio)
		colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.scene, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(tr.samplesPerPixel))
}

// pixelSampler returns the generator owned by pixel (i, j). Each pixel draws
// from its own PCG stream, so the result does not depend on which worker
// renders it or in what order.
func pixelSampler(seed uint64, width, i, j int) core.Sampler {
	return core.NewStreamSampler(seed, uint64(j*width+i))
}
