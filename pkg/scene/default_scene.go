package scene

// approxPi is the pi approximation the default scene's field of view is expressed in
const approxPi = 3.14159

// DefaultConfig describes the default scene: two mirror spheres inside a box
// made of six huge diffuse spheres, lit by a single point light
func DefaultConfig() *Config {
	wall := func(center Vec, albedo Vec, radius float64) SphereConfig {
		return SphereConfig{Center: center, Albedo: albedo, Radius: radius}
	}

	return &Config{
		Name:        "Default Scene",
		Description: "Two mirror spheres in a box of colored walls",
		Camera: CameraConfig{
			Position: Vec{0, 0, 55},
			FOV:      approxPi / 3,
			Width:    1024,
			Height:   1024,
		},
		Light: LightConfig{
			Position:  Vec{-10, 20, 40},
			Intensity: 2e10,
		},
		Spheres: []SphereConfig{
			{Center: Vec{15, 0, 0}, Albedo: Vec{0.5, 0.2, 0.5}, Radius: 10, Mirror: true},
			{Center: Vec{-15, 0, 0}, Albedo: Vec{0.5, 0.2, 0.5}, Radius: 10, Mirror: true},
			wall(Vec{0, 0, -1000}, Vec{0.2, 0.5, 0.1}, 940), // back
			wall(Vec{0, 1000, 0}, Vec{0.5, 0.2, 0.1}, 940),  // ceiling
			wall(Vec{0, 0, 1000}, Vec{0.5, 0.3, 0.2}, 940),  // behind the camera
			wall(Vec{0, -1000, 0}, Vec{0.1, 0.2, 0.5}, 990), // floor
			wall(Vec{1000, 0, 0}, Vec{0.6, 0.2, 0.5}, 940),  // right
			wall(Vec{-1000, 0, 0}, Vec{0.1, 0.5, 0.5}, 940), // left
		},
	}
}

// NewDefaultScene creates the default scene at the given resolution
func NewDefaultScene(width, height int) (*Scene, error) {
	cfg := DefaultConfig()
	cfg.Camera.Width = width
	cfg.Camera.Height = height
	return cfg.Build()
}

// MirrorsConfig describes a diffuse sphere caught between two facing mirrors,
// which sends rays back and forth until the bounce limit cuts them off
func MirrorsConfig() *Config {
	return &Config{
		Name:        "Hall of Mirrors",
		Description: "A diffuse sphere between two large facing mirrors",
		Camera: CameraConfig{
			Position: Vec{0, 8, 60},
			FOV:      approxPi / 3,
			Width:    512,
			Height:   512,
		},
		Light: LightConfig{
			Position:  Vec{0, 30, 30},
			Intensity: 1e10,
		},
		Spheres: []SphereConfig{
			{Center: Vec{0, 0, 0}, Albedo: Vec{0.8, 0.3, 0.2}, Radius: 6},
			{Center: Vec{-130, 0, 0}, Albedo: Vec{1, 1, 1}, Radius: 100, Mirror: true},
			{Center: Vec{130, 0, 0}, Albedo: Vec{1, 1, 1}, Radius: 100, Mirror: true},
			{Center: Vec{0, -1000, 0}, Albedo: Vec{0.4, 0.4, 0.4}, Radius: 990},
		},
	}
}
