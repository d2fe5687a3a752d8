package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Channels is the number of bytes per pixel in the camera buffer (RGB)
const Channels = 3

// Camera is a pinhole camera looking down -Z that owns the destination pixel buffer
type Camera struct {
	Position core.Vec3
	FOV      float64 // Horizontal field of view in radians
	Width    int
	Height   int
	Image    []byte // Width*Height*3 bytes, row-major RGB
}

// NewCamera creates a camera with a zeroed pixel buffer
func NewCamera(position core.Vec3, fov float64, width, height int) *Camera {
	return &Camera{
		Position: position,
		FOV:      fov,
		Width:    width,
		Height:   height,
		Image:    make([]byte, width*height*Channels),
	}
}

// Validate reports whether the camera parameters can produce an image
func (c *Camera) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid camera resolution %dx%d", c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return fmt.Errorf("invalid camera fov %f: must be in (0, pi)", c.FOV)
	}
	if len(c.Image) != c.Width*c.Height*Channels {
		return fmt.Errorf("camera buffer has %d bytes, expected %d", len(c.Image), c.Width*c.Height*Channels)
	}
	return nil
}

// Stride returns the number of bytes per image row
func (c *Camera) Stride() int {
	return c.Width * Channels
}

// GetRay returns the primary ray through the center of pixel (row i, column j)
func (c *Camera) GetRay(i, j int) (core.Ray, error) {
	// Half extents use integer division, so odd resolutions are off center by half a pixel
	direction := core.NewVec3(
		float64(j-c.Width/2)+0.5,
		float64(-i+c.Height/2)-0.5,
		-float64(c.Width)/(2*math.Tan(c.FOV/2)),
	)
	if _, err := core.Normalize(&direction); err != nil {
		return core.Ray{}, fmt.Errorf("primary ray for pixel (%d,%d): %w", i, j, err)
	}
	return core.NewRay(c.Position, direction), nil
}

// SetPixel stores a color in pixel units at row i, column j
func (c *Camera) SetPixel(i, j int, color core.Vec3) {
	offset := (i*c.Width + j) * Channels
	c.Image[offset], c.Image[offset+1], c.Image[offset+2] = core.ToBytes(color)
}
