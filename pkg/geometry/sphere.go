package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NoHit is the intersection parameter reported when a ray misses
const NoHit = -1.0

// Sphere represents a sphere shape with either a diffuse or a mirror surface
type Sphere struct {
	Center  core.Vec3
	Albedo  core.Vec3 // Per-channel reflectance in [0,1]
	Radius  float64
	Diffuse bool // false means ideal mirror
}

// NewSphere creates a new diffuse sphere
func NewSphere(center core.Vec3, albedo core.Vec3, radius float64) Sphere {
	return Sphere{
		Center:  center,
		Albedo:  albedo,
		Radius:  radius,
		Diffuse: true,
	}
}

// NewMirrorSphere creates a new sphere with an ideal mirror surface
func NewMirrorSphere(center core.Vec3, albedo core.Vec3, radius float64) Sphere {
	s := NewSphere(center, albedo, radius)
	s.Diffuse = false
	return s
}

// Intersection returns the smallest non-negative ray parameter at which the
// ray meets the sphere, or NoHit.
func (s *Sphere) Intersection(ray core.Ray) float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Norm2()
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Norm2() - s.Radius*s.Radius

	if a == 0 {
		return NoHit
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// t1 <= t2 since a > 0; the near root wins unless it is behind the origin
	switch {
	case t1 >= 0:
		return t1
	case t2 >= 0:
		return t2
	default:
		return NoHit
	}
}

// Normal returns the outward unit normal at a point on the sphere surface
func (s *Sphere) Normal(point core.Vec3) (core.Vec3, error) {
	return core.Normalized(point.Sub(s.Center))
}
