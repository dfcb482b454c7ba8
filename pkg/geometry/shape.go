package geometry

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Epsilon is the minimum accepted ray parameter. Roots at or below it are
// treated as self-intersections of a ray leaving a surface.
const Epsilon = 0.001

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3          // Point of intersection
	Normal   core.Vec3          // Outward unit surface normal at intersection
	T        float64            // Parameter t along the ray
	Material *material.Material // Material of the hit object
}

// ClosestHit tests the ray against every sphere and returns the nearest hit.
// Spheres earlier in the slice win exact ties.
func ClosestHit(ray core.Ray, spheres []*Sphere) (*HitRecord, bool) {
	var closestHit *HitRecord
	hitAnything := false

	for _, sphere := range spheres {
		if hit, isHit := sphere.Hit(ray); isHit {
			if !hitAnything || hit.T < closestHit.T {
				closestHit = hit
				hitAnything = true
			}
		}
	}

	return closestHit, hitAnything
}
