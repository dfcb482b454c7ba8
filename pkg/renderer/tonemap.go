package renderer

import "github.com/df07/go-sphere-pathtracer/pkg/core"

// DisplayGamma is the gamma the tone-mapped buffer is encoded for
const DisplayGamma = 2.2

// ToneMap maps an averaged radiance to display range: Reinhard c/(c+1) per
// channel, gamma correction, then clamping to [0,1]. Negative channels are
// treated as black.
func ToneMap(c core.Vec3) core.Vec3 {
	c = core.NewVec3(max(c.X, 0), max(c.Y, 0), max(c.Z, 0))
	mapped := c.DivideVec(c.Add(core.NewVec3(1, 1, 1)))
	return mapped.GammaCorrect(DisplayGamma).Clamp(0.0, 1.0)
}
