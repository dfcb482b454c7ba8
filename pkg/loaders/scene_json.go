package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Vec3 is a JSON triple, written as [x, y, z]
type Vec3 [3]float64

// ToVec3 converts the triple to a core vector
func (v Vec3) ToVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// FromVec3 converts a core vector to a JSON triple
func FromVec3(v core.Vec3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// SceneFile is the on-disk description of a sphere scene
type SceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Camera      CameraSpec              `json:"camera"`
	Light       *Vec3                   `json:"light,omitempty"`
	Materials   map[string]MaterialSpec `json:"materials,omitempty"`
	Spheres     []SphereSpec            `json:"spheres"`
	Render      *RenderSpec             `json:"render,omitempty"`
}

// CameraSpec describes the camera. Up defaults to +Y when omitted.
type CameraSpec struct {
	Position Vec3    `json:"position"`
	Forward  Vec3    `json:"forward"`
	Up       *Vec3   `json:"up,omitempty"`
	FOV      float64 `json:"fov"`
}

// MaterialSpec describes a material
type MaterialSpec struct {
	Color     Vec3    `json:"color"`
	Metallic  float64 `json:"metallic"`
	Roughness float64 `json:"roughness"`
}

// SphereSpec describes a sphere. Material is either the name of an entry in
// SceneFile.Materials or an inline MaterialSpec object.
type SphereSpec struct {
	Center   Vec3            `json:"center"`
	Radius   float64         `json:"radius"`
	Material json.RawMessage `json:"material"`
}

// RenderSpec holds optional recommended render settings. Zero sizes and
// sample counts mean unset; MaxBounces is a pointer because 0 is a valid
// recommendation.
type RenderSpec struct {
	Width           int  `json:"width,omitempty"`
	Height          int  `json:"height,omitempty"`
	SamplesPerPixel int  `json:"samplesPerPixel,omitempty"`
	MaxBounces      *int `json:"maxBounces,omitempty"`
}

// ParseSceneJSON decodes a scene description. Unknown fields are rejected so
// that typos do not silently fall back to defaults.
func ParseSceneJSON(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	for i := range file.Spheres {
		if _, err := file.ResolveMaterial(i); err != nil {
			return nil, err
		}
	}

	return &file, nil
}

// LoadSceneJSON reads and decodes a scene description file
func LoadSceneJSON(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sceneFile, nil
}

// MaterialName returns the name sphere i refers to, or false for an inline material
func (f *SceneFile) MaterialName(i int) (string, bool) {
	raw := bytes.TrimSpace(f.Spheres[i].Material)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", false
	}
	return name, true
}

// ResolveMaterial returns the material spec used by sphere i
func (f *SceneFile) ResolveMaterial(i int) (MaterialSpec, error) {
	raw := bytes.TrimSpace(f.Spheres[i].Material)
	if len(raw) == 0 {
		return MaterialSpec{}, fmt.Errorf("sphere %d: missing material", i)
	}

	if raw[0] == '"' {
		name, ok := f.MaterialName(i)
		if !ok {
			return MaterialSpec{}, fmt.Errorf("sphere %d: invalid material name %s", i, raw)
		}
		spec, ok := f.Materials[name]
		if !ok {
			return MaterialSpec{}, fmt.Errorf("sphere %d: unknown material %q", i, name)
		}
		return spec, nil
	}

	// Inline definition
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	var spec MaterialSpec
	if err := decoder.Decode(&spec); err != nil {
		return MaterialSpec{}, fmt.Errorf("sphere %d: invalid inline material: %w", i, err)
	}
	return spec, nil
}

// WriteSceneJSON encodes a scene description with indentation
func WriteSceneJSON(writer io.Writer, file *SceneFile) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return nil
}
