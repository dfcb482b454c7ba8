package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Validate checks the sphere has a positive radius and a valid material
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: sphere center %v is not finite", core.ErrInvalidParameter, s.Center)
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: sphere radius must be positive, got %g", core.ErrInvalidParameter, s.Radius)
	}
	if s.Material == nil {
		return fmt.Errorf("%w: sphere at %v has no material", core.ErrInvalidParameter, s.Center)
	}
	return s.Material.Validate()
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil, false
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root, fall back to the farther one when the
	// nearer root is behind or too close to the origin
	root := (-b - sqrtD) / (2 * a)
	if root <= Epsilon {
		root = (-b + sqrtD) / (2 * a)
	}
	if root <= Epsilon {
		return nil, false
	}

	point := ray.At(root)
	return &HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Divide(s.Radius),
		Material: s.Material,
	}, true
}
