package scene

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// DefaultEpsilon is the distance new rays are pushed off a surface along its
// normal so they do not immediately re-hit the surface they start on
const DefaultEpsilon = 0.001

// NoSphere is the index reported by Intersect when nothing is hit
const NoSphere = -1

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *renderer.Camera
	Light        lights.PointLight
	Epsilon      float64               // Surface offset for reflected and shadow rays
	RenderConfig renderer.RenderConfig // Tiling, workers and bounce depth
	spheres      []geometry.Sphere
}

// NewScene creates an empty scene viewed by camera and lit by light
func NewScene(camera *renderer.Camera, light lights.PointLight) *Scene {
	return &Scene{
		Camera:       camera,
		Light:        light,
		Epsilon:      DefaultEpsilon,
		RenderConfig: renderer.DefaultRenderConfig(),
	}
}

// AddSphere appends a sphere. Spheres must be added before rendering.
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.spheres = append(s.spheres, sphere)
}

// Spheres returns the scene's spheres in insertion order. Callers must not modify them.
func (s *Scene) Spheres() []geometry.Sphere {
	return s.spheres
}

// SetResolution replaces the camera with a new one of the given size at the
// same position and field of view. The previous pixel buffer is discarded.
func (s *Scene) SetResolution(width, height int) {
	s.Camera = renderer.NewCamera(s.Camera.Position, s.Camera.FOV, width, height)
}

// Validate checks the scene inputs before rendering
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	if err := s.Camera.Validate(); err != nil {
		return err
	}
	if !(s.Light.Intensity > 0) {
		return fmt.Errorf("invalid light intensity %f: must be positive", s.Light.Intensity)
	}
	for i := range s.spheres {
		if !(s.spheres[i].Radius > 0) {
			return fmt.Errorf("sphere %d: invalid radius %f: must be positive", i, s.spheres[i].Radius)
		}
	}
	return nil
}

// Intersect returns the nearest non-negative hit parameter along ray and the
// index of the sphere hit. The first sphere wins ties. A miss reports
// (geometry.NoHit, NoSphere).
func (s *Scene) Intersect(ray core.Ray) (float64, int) {
	t, index := geometry.NoHit, NoSphere

	for i := range s.spheres {
		ti := s.spheres[i].Intersection(ray)
		if ti >= 0 && (index == NoSphere || ti < t) {
			t, index = ti, i
		}
	}

	return t, index
}

// GetColor returns the color seen along ray in pixel units. Diffuse surfaces
// are lit directly; mirrors recurse along the reflected ray with depth-1.
// A negative depth or a miss yields black.
func (s *Scene) GetColor(ray core.Ray, depth int) (core.Vec3, error) {
	if depth < 0 {
		return core.Vec3{}, nil
	}

	t, index := s.Intersect(ray)
	if index == NoSphere {
		return core.Vec3{}, nil
	}

	sphere := &s.spheres[index]
	point := ray.At(t)
	normal, err := sphere.Normal(point)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("normal of sphere %d: %w", index, err)
	}

	if sphere.Diffuse {
		return s.GetShadow(point, normal, sphere)
	}

	reflected := core.NewRay(point.Add(normal.Mul(s.Epsilon)), core.Reflect(ray.Direction, normal))
	return s.GetColor(reflected, depth-1)
}

// GetShadow returns the direct lighting at point on sphere in pixel units,
// or black if the point is turned away from the light or occluded.
func (s *Scene) GetShadow(point, normal core.Vec3, sphere *geometry.Sphere) (core.Vec3, error) {
	wi, distance, err := s.Light.Direction(point)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("direction to light: %w", err)
	}

	shadowRay := core.NewRay(point.Add(normal.Mul(s.Epsilon)), wi)

	// The surface itself blocks the light near grazing angles
	if sphere.Intersection(shadowRay) != geometry.NoHit {
		return core.Vec3{}, nil
	}

	// Any occluder strictly closer than the light
	if t, _ := s.Intersect(shadowRay); t > 0 && t*t*shadowRay.Direction.Norm2() < distance*distance {
		return core.Vec3{}, nil
	}

	radiance := s.Light.Radiance(distance, normal.Dot(wi))
	return core.EncodeColor(sphere.Albedo.Mul(radiance)), nil
}

// Render fills the camera's pixel buffer. The buffer is complete once Render
// returns without error.
func (s *Scene) Render(logger core.Logger) (renderer.RenderStats, error) {
	if err := s.Validate(); err != nil {
		return renderer.RenderStats{}, err
	}
	return renderer.NewRaytracer(s, s.Camera, s.RenderConfig, logger).Render()
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.spheres)
}
