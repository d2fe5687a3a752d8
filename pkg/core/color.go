package core

import "math"

// Gamma is the display gamma applied when encoding radiance to pixel values
const Gamma = 2.2

// EncodeChannel gamma-encodes a radiance value and truncates it to a pixel
// intensity in [0, 255]. Non-positive and NaN inputs map to 0.
func EncodeChannel(radiance float64) float64 {
	if !(radiance > 0) {
		return 0
	}
	v := math.Trunc(math.Pow(radiance, 1/Gamma))
	return math.Min(v, 255)
}

// EncodeColor applies EncodeChannel to every component
func EncodeColor(radiance Vec3) Vec3 {
	return Vec3{
		X: EncodeChannel(radiance.X),
		Y: EncodeChannel(radiance.Y),
		Z: EncodeChannel(radiance.Z),
	}
}

// ToBytes converts a color in pixel units to an RGB byte triple, clamping to [0, 255]
func ToBytes(c Vec3) (r, g, b uint8) {
	return clampByte(c.X), clampByte(c.Y), clampByte(c.Z)
}

func clampByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
