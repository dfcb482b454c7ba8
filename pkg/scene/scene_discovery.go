package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/loaders"
)

// SceneInfo describes a scene that can be rendered by ID
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

type builtinScene struct {
	info SceneInfo
	make func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Three colored spheres, a mirror sphere and a ground sphere",
			Type:        "builtin",
		},
		make: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "single-sphere",
			Name:        "Single Sphere",
			Description: "One diffuse unit sphere seen head-on",
			Type:        "builtin",
		},
		make: NewSingleSphereScene,
	},
	{
		info: SceneInfo{
			ID:          "empty",
			Name:        "Empty",
			Description: "No geometry, only the sky",
			Type:        "builtin",
		},
		make: NewEmptyScene,
	},
}

// BuiltinScenes returns the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
	}
	return infos
}

// ListJSONScenes scans dir for *.json scene files. A missing directory
// yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		scenes = append(scenes, parseJSONMetadata(filePath))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes, nil
}

// parseJSONMetadata builds the listing entry for a scene file. Files that
// fail to parse are still listed under their file name so the error shows
// up when the scene is rendered.
func parseJSONMetadata(filePath string) SceneInfo {
	base := filepath.Base(filePath)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	info := SceneInfo{
		ID:       id,
		Name:     titleCase(id),
		Type:     "json",
		FilePath: filePath,
	}

	file, err := loaders.LoadSceneJSON(filePath)
	if err != nil {
		info.Description = "unreadable: " + err.Error()
		return info
	}
	if file.Name != "" {
		info.Name = file.Name
	}
	info.Description = file.Description
	return info
}

// ListAllScenes returns the built-in scenes followed by the JSON scenes in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	return append(BuiltinScenes(), jsonScenes...), nil
}

// CreateScene resolves a scene by built-in ID, by path to a .json file, or
// by the name of a .json file in dir.
func CreateScene(idOrPath, dir string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == idOrPath {
			return b.make(), nil
		}
	}

	if strings.HasSuffix(idOrPath, ".json") {
		return NewJSONScene(idOrPath)
	}

	if dir != "" {
		candidate := filepath.Join(dir, idOrPath+".json")
		if _, err := os.Stat(candidate); err == nil {
			return NewJSONScene(candidate)
		}
	}

	return nil, fmt.Errorf("%w: unknown scene %q", core.ErrInvalidParameter, idOrPath)
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
