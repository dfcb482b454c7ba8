package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Image is a tone-mapped color buffer with components in [0,1].
// Row y = 0 is the bottom edge of the view.
type Image struct {
	Width  int
	Height int
	Pix    []core.Vec3 // Row-major, Pix[y*Width+x]
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the color at pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pix[y*img.Width+x]
}

// Set stores the color at pixel (x, y). Distinct pixels may be set
// concurrently.
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pix[y*img.Width+x] = c
}

// ToRGBA converts the buffer to an 8-bit image. Rows are flipped so the top
// of the view is the first row of the result.
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for j := 0; j < img.Height; j++ {
		for i := 0; i < img.Width; i++ {
			rgba.SetRGBA(i, img.Height-1-j, vec3ToColor(img.At(i, j)))
		}
	}
	return rgba
}

// vec3ToColor quantizes a [0,1] color to 8 bits per channel
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
