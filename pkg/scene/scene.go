package scene

import (
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// A scene is built once and only read while rendering, so it can be shared
// by every render worker without locking.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	Spheres        []*geometry.Sphere // Objects in the scene, order only breaks exact ties
	Light          core.Vec3          // Position of the single point light
	SamplingConfig SamplingConfig     // Recommended render settings
}

// SamplingConfig contains the recommended render settings for a scene
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxBounces      int // Maximum path length
}

// DefaultSamplingConfig returns the settings used by the default scene
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 8,
		MaxBounces:      5,
	}
}

// NewScene creates a scene from its parts
func NewScene(name string, cameraConfig geometry.CameraConfig, light core.Vec3, spheres ...*geometry.Sphere) *Scene {
	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(cameraConfig),
		Spheres:        spheres,
		Light:          light,
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// Hit returns the closest intersection of the ray with the scene
func (s *Scene) Hit(ray core.Ray) (*geometry.HitRecord, bool) {
	return geometry.ClosestHit(ray, s.Spheres)
}

// Validate checks the camera, light and every sphere
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("%w: scene %q has no camera", core.ErrInvalidParameter, s.Name)
	}
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if !s.Light.IsFinite() {
		return fmt.Errorf("%w: scene %q light position %v is not finite", core.ErrInvalidParameter, s.Name, s.Light)
	}
	for i, sphere := range s.Spheres {
		if sphere == nil {
			return fmt.Errorf("%w: scene %q sphere %d is nil", core.ErrInvalidParameter, s.Name, i)
		}
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("scene %q sphere %d: %w", s.Name, i, err)
		}
	}
	return nil
}
