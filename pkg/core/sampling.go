package core

import (
	"math"
	"math/rand/v2"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewStreamSampler creates a sampler on an independent PCG stream.
// The same (seed, stream) pair always yields the same sequence, which lets
// every pixel own its generator regardless of which goroutine renders it.
func NewStreamSampler(seed, stream uint64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewPCG(seed, stream))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere maps two uniform samples to a direction on the unit sphere.
// theta = 2π·u1 is the azimuth and phi = acos(2·u2 - 1) the polar angle, which
// gives a uniform (not cosine-weighted) distribution over the full sphere.
func SampleOnUnitSphere(sample Vec2) Vec3 {
	theta := 2 * math.Pi * sample.X
	phi := math.Acos(2*sample.Y - 1)

	x := math.Sin(phi) * math.Cos(theta)
	y := math.Sin(phi) * math.Sin(theta)
	z := math.Cos(phi)

	return NewVec3(x, y, z).Normalize()
}
