package integrator

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

const (
	ambientFactor   = 0.3
	diffuseFactor   = 0.7
	specularFactor  = 0.8
	shinyExponent   = 256.0
	roughExponent   = 16.0
	skyBrightness   = 0.3
	roughnessJitter = 0.3
)

var (
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// EvaluateLighting computes the direct contribution of the point light at a
// surface point: ambient + Lambertian diffuse + Blinn-Phong specular. The
// light is never occluded and the result is not clamped.
func EvaluateLighting(point, normal, viewDir, light core.Vec3, mat *material.Material) core.Vec3 {
	toLight := light.Subtract(point).Normalize()

	ambient := mat.Color.Multiply(ambientFactor)

	nDotL := math.Max(0, normal.Dot(toLight))
	diffuse := mat.Color.Multiply(nDotL * diffuseFactor)

	halfway := toLight.Add(viewDir.Normalize()).Normalize()
	exponent := roughExponent
	if mat.IsShiny() {
		exponent = shinyExponent
	}
	spec := math.Pow(math.Max(0, normal.Dot(halfway)), exponent) * mat.Metallic * specularFactor
	specular := core.NewVec3(spec, spec, spec)

	return ambient.Add(diffuse).Add(specular)
}

// SkyColor returns the dim vertical gradient seen by rays that escape the scene
func SkyColor(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t)).Multiply(skyBrightness)
}
