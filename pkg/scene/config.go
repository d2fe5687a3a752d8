package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Vec is a JSON-friendly [x, y, z] triple
type Vec [3]float64

// Vec3 converts the triple to a core.Vec3
func (v Vec) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type CameraConfig struct {
	Position Vec     `json:"position"`
	FOV      float64 `json:"fov"` // radians
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

type LightConfig struct {
	Position  Vec     `json:"position"`
	Intensity float64 `json:"intensity"`
}

type SphereConfig struct {
	Center Vec     `json:"center"`
	Albedo Vec     `json:"albedo"`
	Radius float64 `json:"radius"`
	Mirror bool    `json:"mirror,omitempty"` // Ideal mirror instead of diffuse
}

// Config describes a scene file
type Config struct {
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Epsilon     float64        `json:"epsilon,omitempty"`  // defaults to DefaultEpsilon
	MaxDepth    int            `json:"maxDepth,omitempty"` // defaults to renderer.DefaultMaxDepth
	Camera      CameraConfig   `json:"camera"`
	Light       LightConfig    `json:"light"`
	Spheres     []SphereConfig `json:"spheres"`
}

// LoadConfig reads and validates a JSON scene file
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	cfg, err := ParseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a JSON scene description
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against the scene invariants
func (c *Config) Validate() error {
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return fmt.Errorf("camera: invalid resolution %dx%d", c.Camera.Width, c.Camera.Height)
	}
	if !(c.Camera.FOV > 0 && c.Camera.FOV < math.Pi) {
		return fmt.Errorf("camera: fov %f must be in (0, pi) radians", c.Camera.FOV)
	}
	if !(c.Light.Intensity > 0) {
		return fmt.Errorf("light: intensity %f must be positive", c.Light.Intensity)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon %f must not be negative", c.Epsilon)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth %d must not be negative", c.MaxDepth)
	}
	for i, s := range c.Spheres {
		if !(s.Radius > 0) {
			return fmt.Errorf("sphere %d: radius %f must be positive", i, s.Radius)
		}
	}
	return nil
}

// Build creates a scene from the configuration
func (c *Config) Build() (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(c.Camera.Position.Vec3(), c.Camera.FOV, c.Camera.Width, c.Camera.Height)
	light := lights.NewPointLight(c.Light.Position.Vec3(), c.Light.Intensity)

	s := NewScene(camera, light)
	if c.Epsilon > 0 {
		s.Epsilon = c.Epsilon
	}
	if c.MaxDepth > 0 {
		s.RenderConfig.MaxDepth = c.MaxDepth
	}

	for _, sc := range c.Spheres {
		if sc.Mirror {
			s.AddSphere(geometry.NewMirrorSphere(sc.Center.Vec3(), sc.Albedo.Vec3(), sc.Radius))
		} else {
			s.AddSphere(geometry.NewSphere(sc.Center.Vec3(), sc.Albedo.Vec3(), sc.Radius))
		}
	}

	return s, nil
}
