package lights

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// falloffPi is the truncated pi used by the inverse-square falloff.
// Note the falloff divides by 4π², not 4π.
const falloffPi = 3.14159

// PointLight is an infinitesimal light emitting Intensity uniformly in all directions
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Intensity: intensity,
	}
}

// Direction returns the unit direction from point toward the light and the distance to it
func (l PointLight) Direction(point core.Vec3) (core.Vec3, float64, error) {
	wi := l.Position.Sub(point)
	d, err := core.Normalize(&wi)
	return wi, d, err
}

// Radiance returns the light arriving at a surface at the given distance,
// where cosine is the dot product of the surface normal and the unit direction
// toward the light. Surfaces facing away receive nothing.
func (l PointLight) Radiance(distance, cosine float64) float64 {
	return l.Intensity / (4 * falloffPi * falloffPi * distance * distance) * math.Max(0, cosine)
}
