package core

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
)

// ErrDegenerateVector is returned when a zero-length vector is normalized
var ErrDegenerateVector = errors.New("degenerate vector: cannot normalize zero length")

// Vec3 is the 3D vector used for points, directions and colors.
// Add, Sub, Mul, Dot and Norm2 come from r3.Vector.
type Vec3 = r3.Vector

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Normalize divides v by its length in place and returns that length.
// A zero vector is left untouched and ErrDegenerateVector is returned.
func Normalize(v *Vec3) (float64, error) {
	n := math.Sqrt(v.Norm2())
	if n == 0 || math.IsNaN(n) {
		return 0, ErrDegenerateVector
	}
	v.X /= n
	v.Y /= n
	v.Z /= n
	return n, nil
}

// Normalized returns a unit copy of v
func Normalized(v Vec3) (Vec3, error) {
	_, err := Normalize(&v)
	return v, err
}

// Reflect mirrors direction d about the unit normal n
func Reflect(d, n Vec3) Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}
