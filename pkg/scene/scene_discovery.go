package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// builtinScenes maps scene IDs to their configurations
var builtinScenes = map[string]func() *Config{
	"default": DefaultConfig,
	"mirrors": MirrorsConfig,
}

// ListScenes returns the built-in scenes followed by every *.json scene in dir,
// sorted by name. A missing directory yields only the built-in scenes.
func ListScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo
	for id, newConfig := range builtinScenes {
		cfg := newConfig()
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        cfg.Name,
			Description: cfg.Description,
			Type:        "builtin",
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var fileScenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: skipping scene %s: %v\n", filePath, err)
			continue
		}
		fileScenes = append(fileScenes, info)
	}
	sort.Slice(fileScenes, func(i, j int) bool {
		return fileScenes[i].Name < fileScenes[j].Name
	})

	return append(scenes, fileScenes...), nil
}

// ParseSceneMetadata loads a scene file and extracts its name and description,
// falling back to a title-cased file name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	cfg, err := LoadConfig(filePath)
	if err != nil {
		return SceneInfo{}, err
	}

	info := SceneInfo{
		ID:          "json:" + nameWithoutExt,
		Name:        cfg.Name,
		Description: cfg.Description,
		Type:        "json",
		FilePath:    filePath,
	}
	if info.Name == "" {
		info.Name = titleCase(nameWithoutExt)
	}
	return info, nil
}

// CreateScene resolves a scene by built-in ID, "json:<name>" ID, bare name of a
// file in dir, or path to a .json file
func CreateScene(name, dir string) (*Scene, error) {
	cfg, err := LoadSceneConfig(name, dir)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// LoadSceneConfig resolves a scene name the same way as CreateScene and
// returns its configuration without building it
func LoadSceneConfig(name, dir string) (*Config, error) {
	if name == "" {
		return nil, fmt.Errorf("empty scene name")
	}
	if newConfig, ok := builtinScenes[name]; ok {
		return newConfig(), nil
	}
	if strings.HasSuffix(name, ".json") {
		return LoadConfig(name)
	}

	name = strings.TrimPrefix(name, "json:")
	if dir != "" {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}
	return nil, fmt.Errorf("unknown scene: %s", name)
}

// titleCase converts a file name like "hall-of_mirrors" to "Hall Of Mirrors"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
