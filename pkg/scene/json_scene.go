package scene

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/loaders"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewJSONScene creates a scene from a JSON scene file
func NewJSONScene(path string) (*Scene, error) {
	file, err := loaders.LoadSceneJSON(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load JSON scene: %w", err)
	}

	s, err := FromSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// FromSceneFile converts a decoded scene description into a validated scene.
// Spheres that share a named material share the same *material.Material.
func FromSceneFile(file *loaders.SceneFile) (*Scene, error) {
	up := core.NewVec3(0, 1, 0)
	if file.Camera.Up != nil {
		up = file.Camera.Up.ToVec3()
	}
	cameraConfig := geometry.CameraConfig{
		Position: file.Camera.Position.ToVec3(),
		Forward:  file.Camera.Forward.ToVec3(),
		Up:       up,
		FOV:      file.Camera.FOV,
	}

	light := DefaultLight
	if file.Light != nil {
		light = file.Light.ToVec3()
	}

	s := NewScene(file.Name, cameraConfig, light)

	named := make(map[string]*material.Material, len(file.Materials))
	for name, spec := range file.Materials {
		named[name] = toMaterial(spec)
	}

	for i, sphereSpec := range file.Spheres {
		mat, err := sphereMaterial(file, i, named)
		if err != nil {
			return nil, err
		}
		s.AddSphere(geometry.NewSphere(sphereSpec.Center.ToVec3(), sphereSpec.Radius, mat))
	}

	if file.Render != nil {
		s.SamplingConfig = mergeSamplingConfig(s.SamplingConfig, *file.Render)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ToSceneFile converts a scene back into its JSON description. Every
// distinct material is written once under a generated name.
func ToSceneFile(s *Scene) *loaders.SceneFile {
	cfg := s.Camera.Config()
	up := loaders.FromVec3(cfg.Up)
	light := loaders.FromVec3(s.Light)
	maxBounces := s.SamplingConfig.MaxBounces

	file := &loaders.SceneFile{
		Name: s.Name,
		Camera: loaders.CameraSpec{
			Position: loaders.FromVec3(cfg.Position),
			Forward:  loaders.FromVec3(cfg.Forward),
			Up:       &up,
			FOV:      cfg.FOV,
		},
		Light:     &light,
		Materials: make(map[string]loaders.MaterialSpec),
		Render: &loaders.RenderSpec{
			Width:           s.SamplingConfig.Width,
			Height:          s.SamplingConfig.Height,
			SamplesPerPixel: s.SamplingConfig.SamplesPerPixel,
			MaxBounces:      &maxBounces,
		},
	}

	names := make(map[*material.Material]string)
	for _, sphere := range s.Spheres {
		name, ok := names[sphere.Material]
		if !ok {
			name = fmt.Sprintf("material%d", len(names))
			names[sphere.Material] = name
			file.Materials[name] = loaders.MaterialSpec{
				Color:     loaders.FromVec3(sphere.Material.Color),
				Metallic:  sphere.Material.Metallic,
				Roughness: sphere.Material.Roughness,
			}
		}
		// Marshaling a string cannot fail
		ref, _ := json.Marshal(name)
		file.Spheres = append(file.Spheres, loaders.SphereSpec{
			Center:   loaders.FromVec3(sphere.Center),
			Radius:   sphere.Radius,
			Material: ref,
		})
	}

	return file
}

func sphereMaterial(file *loaders.SceneFile, i int, named map[string]*material.Material) (*material.Material, error) {
	if name, ok := file.MaterialName(i); ok {
		if mat, ok := named[name]; ok {
			return mat, nil
		}
	}
	spec, err := file.ResolveMaterial(i)
	if err != nil {
		return nil, err
	}
	return toMaterial(spec), nil
}

func toMaterial(spec loaders.MaterialSpec) *material.Material {
	return material.NewMaterial(spec.Color.ToVec3(), spec.Metallic, spec.Roughness)
}

func mergeSamplingConfig(base SamplingConfig, override loaders.RenderSpec) SamplingConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxBounces != nil && *override.MaxBounces >= 0 {
		base.MaxBounces = *override.MaxBounces
	}
	return base
}
