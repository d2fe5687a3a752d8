package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

const validSceneJSON = `{
  "name": "Two Spheres",
  "description": "A mirror next to a matte ball",
  "epsilon": 0.01,
  "maxDepth": 3,
  "camera": {"position": [0, 0, 20], "fov": 1.0, "width": 32, "height": 24},
  "light": {"position": [0, 10, 10], "intensity": 1e9},
  "spheres": [
    {"center": [-3, 0, 0], "albedo": [0.2, 0.4, 0.6], "radius": 2},
    {"center": [3, 0, 0], "albedo": [1, 1, 1], "radius": 2, "mirror": true}
  ]
}`

func TestParseConfig_Build(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(validSceneJSON))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Name != "Two Spheres" {
		t.Errorf("Expected name 'Two Spheres', got %q", cfg.Name)
	}

	s, err := cfg.Build()
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}

	if s.Camera.Width != 32 || s.Camera.Height != 24 || s.Camera.FOV != 1.0 {
		t.Errorf("Unexpected camera: %dx%d fov %f", s.Camera.Width, s.Camera.Height, s.Camera.FOV)
	}
	if s.Camera.Position != core.NewVec3(0, 0, 20) {
		t.Errorf("Unexpected camera position %v", s.Camera.Position)
	}
	if s.Light.Intensity != 1e9 || s.Light.Position != core.NewVec3(0, 10, 10) {
		t.Errorf("Unexpected light %+v", s.Light)
	}
	if s.Epsilon != 0.01 {
		t.Errorf("Expected epsilon 0.01, got %f", s.Epsilon)
	}
	if s.RenderConfig.MaxDepth != 3 {
		t.Errorf("Expected max depth 3, got %d", s.RenderConfig.MaxDepth)
	}

	spheres := s.Spheres()
	if len(spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(spheres))
	}
	if !spheres[0].Diffuse || spheres[1].Diffuse {
		t.Error("Expected first sphere diffuse and second mirror")
	}
	if spheres[0].Albedo != core.NewVec3(0.2, 0.4, 0.6) || spheres[1].Radius != 2 {
		t.Errorf("Unexpected sphere data: %+v", spheres)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{
		Camera: CameraConfig{FOV: 1, Width: 4, Height: 4},
		Light:  LightConfig{Intensity: 1},
	}
	s, err := cfg.Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Epsilon != DefaultEpsilon {
		t.Errorf("Expected default epsilon %f, got %f", DefaultEpsilon, s.Epsilon)
	}
	if s.RenderConfig.MaxDepth != renderer.DefaultMaxDepth {
		t.Errorf("Expected default max depth %d, got %d", renderer.DefaultMaxDepth, s.RenderConfig.MaxDepth)
	}
	if s.GetPrimitiveCount() != 0 {
		t.Errorf("Expected empty scene, got %d spheres", s.GetPrimitiveCount())
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"malformed", `{"camera": `, "decode"},
		{"unknown field", `{"camera": {"fov": 1, "width": 1, "height": 1}, "light": {"intensity": 1}, "planes": []}`, "unknown field"},
		{"zero width", `{"camera": {"fov": 1, "width": 0, "height": 1}, "light": {"intensity": 1}}`, "resolution"},
		{"fov too wide", `{"camera": {"fov": 3.2, "width": 1, "height": 1}, "light": {"intensity": 1}}`, "fov"},
		{"zero fov", `{"camera": {"width": 1, "height": 1}, "light": {"intensity": 1}}`, "fov"},
		{"no light", `{"camera": {"fov": 1, "width": 1, "height": 1}}`, "intensity"},
		{"negative epsilon", `{"epsilon": -1, "camera": {"fov": 1, "width": 1, "height": 1}, "light": {"intensity": 1}}`, "epsilon"},
		{"negative depth", `{"maxDepth": -1, "camera": {"fov": 1, "width": 1, "height": 1}, "light": {"intensity": 1}}`, "maxDepth"},
		{"zero radius", `{"camera": {"fov": 1, "width": 1, "height": 1}, "light": {"intensity": 1}, "spheres": [{"center": [0,0,0], "albedo": [1,1,1], "radius": 0}]}`, "sphere 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "two-spheres.json")
	if err := os.WriteFile(path, []byte(validSceneJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cfg.Spheres) != 2 {
		t.Errorf("Expected 2 spheres, got %d", len(cfg.Spheres))
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	s, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if s.GetPrimitiveCount() != 8 {
		t.Errorf("Expected 8 spheres, got %d", s.GetPrimitiveCount())
	}
	if s.Camera.Width != 1024 || s.Camera.Height != 1024 {
		t.Errorf("Expected 1024x1024, got %dx%d", s.Camera.Width, s.Camera.Height)
	}

	mirrors := 0
	for _, sphere := range s.Spheres() {
		if !sphere.Diffuse {
			mirrors++
		}
	}
	if mirrors != 2 {
		t.Errorf("Expected 2 mirror spheres, got %d", mirrors)
	}
}
