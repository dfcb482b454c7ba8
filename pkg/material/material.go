package material

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Material describes how a surface is shaded and how it scatters path rays.
// Materials are shared by pointer between spheres and never mutated once a
// scene has been built.
type Material struct {
	Color     core.Vec3 // Base color, nominally [0,1] per channel but not clamped
	Metallic  float64   // 0 = fully diffuse bounce, 1 = mirror bounce
	Roughness float64   // Amount of random perturbation added to the bounce
}

// NewMaterial creates a new material
func NewMaterial(color core.Vec3, metallic, roughness float64) *Material {
	return &Material{
		Color:     color,
		Metallic:  metallic,
		Roughness: roughness,
	}
}

// IsShiny reports whether the material uses the tight specular lobe
func (m *Material) IsShiny() bool {
	return m.Metallic > 0.5
}

// Validate checks that the factors lie in [0,1] and the color is finite
func (m *Material) Validate() error {
	if !m.Color.IsFinite() {
		return fmt.Errorf("%w: material color %v is not finite", core.ErrInvalidParameter, m.Color)
	}
	if !inUnitRange(m.Metallic) {
		return fmt.Errorf("%w: metallic must be in [0,1], got %g", core.ErrInvalidParameter, m.Metallic)
	}
	if !inUnitRange(m.Roughness) {
		return fmt.Errorf("%w: roughness must be in [0,1], got %g", core.ErrInvalidParameter, m.Roughness)
	}
	return nil
}

func inUnitRange(f float64) bool {
	return !math.IsNaN(f) && f >= 0 && f <= 1
}
