package integrator

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements iterative unidirectional path tracing
// with direct point-light shading at every vertex
type PathTracingIntegrator struct {
	MaxBounces int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxBounces int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxBounces: maxBounces,
	}
}

// RayColor follows the ray through up to MaxBounces surface interactions.
// Each bounce draws Get2D for the scatter direction, then Get1D for Russian
// roulette. The incoming direction need not be unit length.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	ray = core.NewRay(ray.Origin, ray.Direction.Normalize())
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < pt.MaxBounces; bounce++ {
		hit, isHit := scene.Hit(ray)
		if !isHit {
			radiance = radiance.Add(throughput.MultiplyVec(SkyColor(ray.Direction)))
			break
		}

		mat := hit.Material
		direct := EvaluateLighting(hit.Point, hit.Normal, ray.Direction.Negate(), scene.Light, mat)
		radiance = radiance.Add(throughput.MultiplyVec(direct))
		throughput = throughput.MultiplyVec(mat.Color)

		ray = core.NewRay(hit.Point, scatterDirection(ray.Direction, hit.Normal, mat.Metallic, mat.Roughness, sampler))

		terminate, compensation := ApplyRussianRoulette(throughput, sampler.Get1D())
		if terminate {
			break
		}
		throughput = throughput.Multiply(compensation)
	}

	return radiance
}

// scatterDirection blends the mirror reflection with a uniform sphere sample
// by metallic, then perturbs the result by roughness
func scatterDirection(incoming, normal core.Vec3, metallic, roughness float64, sampler core.Sampler) core.Vec3 {
	random := core.SampleOnUnitSphere(sampler.Get2D())
	reflected := incoming.Reflect(normal)

	direction := reflected.Multiply(metallic).Add(random.Multiply(1 - metallic)).Normalize()
	return direction.Add(random.Multiply(roughness * roughnessJitter)).Normalize()
}

// ApplyRussianRoulette decides whether a path survives. The survival
// probability is the largest throughput channel; survivors are scaled by its
// inverse so the estimate stays unbiased.
func ApplyRussianRoulette(throughput core.Vec3, u float64) (bool, float64) {
	p := throughput.MaxComponent()
	if u > p || p <= 0 {
		return true, 0
	}
	return false, 1.0 / p
}
