package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// DefaultLight is the point light position used by the built-in scenes
var DefaultLight = core.NewVec3(5, 8, 5)

// NewDefaultScene creates the five-sphere scene: three colored spheres, a
// small mirror sphere in the back and a huge sphere acting as the ground.
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Position: core.NewVec3(0, 3, 8),
		Forward:  core.NewVec3(0, -0.3, -1),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      75,
	}

	red := material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.0, 0.2)
	green := material.NewMaterial(core.NewVec3(0.2, 0.8, 0.2), 0.5, 0.3)
	blue := material.NewMaterial(core.NewVec3(0.2, 0.2, 0.8), 0.8, 0.1)
	yellowMirror := material.NewMaterial(core.NewVec3(0.9, 0.9, 0.1), 1.0, 0.05)
	ground := material.NewMaterial(core.NewVec3(0.7, 0.7, 0.7), 0.0, 0.5)

	s := NewScene("default", cameraConfig, DefaultLight,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, red),
		geometry.NewSphere(core.NewVec3(-3, 1, -2), 0.8, green),
		geometry.NewSphere(core.NewVec3(3, 1, -1), 1.2, blue),
		geometry.NewSphere(core.NewVec3(0, 0, -4), 0.6, yellowMirror),
		geometry.NewSphere(core.NewVec3(0, -1001, 0), 1000.0, ground),
	)
	s.SamplingConfig = DefaultSamplingConfig()
	return s
}

// NewSingleSphereScene creates a unit sphere at the origin seen head-on from (0,0,5)
func NewSingleSphereScene() *Scene {
	s := NewScene("single-sphere", frontCameraConfig(), DefaultLight,
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0,
			material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.0, 0.2)),
	)
	s.SamplingConfig = SamplingConfig{
		Width:           320,
		Height:          240,
		SamplesPerPixel: 4,
		MaxBounces:      3,
	}
	return s
}

// NewEmptyScene creates a scene with no spheres, which renders only the sky
func NewEmptyScene() *Scene {
	s := NewScene("empty", frontCameraConfig(), DefaultLight)
	s.SamplingConfig = SamplingConfig{
		Width:           320,
		Height:          240,
		SamplesPerPixel: 1,
		MaxBounces:      1,
	}
	return s
}

func frontCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Position: core.NewVec3(0, 0, 5),
		Forward:  core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
	}
}
