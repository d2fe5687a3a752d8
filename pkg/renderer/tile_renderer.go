package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Tracer evaluates the color carried back along a ray, recursing at most depth times
type Tracer interface {
	GetColor(ray core.Ray, depth int) (core.Vec3, error)
}

// TileRenderer handles the actual rendering of individual tiles
type TileRenderer struct {
	tracer   Tracer
	camera   *Camera
	maxDepth int
}

// NewTileRenderer creates a new tile renderer writing into the camera's buffer
func NewTileRenderer(tracer Tracer, camera *Camera, maxDepth int) *TileRenderer {
	return &TileRenderer{
		tracer:   tracer,
		camera:   camera,
		maxDepth: maxDepth,
	}
}

// RenderTileBounds renders pixels within the specified bounds.
// Bounds never overlap between tiles, so concurrent calls write disjoint bytes.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) (RenderStats, error) {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for i := bounds.Min.Y; i < bounds.Max.Y; i++ {
		for j := bounds.Min.X; j < bounds.Max.X; j++ {
			ray, err := tr.camera.GetRay(i, j)
			if err != nil {
				return stats, err
			}

			color, err := tr.tracer.GetColor(ray, tr.maxDepth)
			if err != nil {
				return stats, fmt.Errorf("pixel (%d,%d): %w", i, j, err)
			}

			tr.camera.SetPixel(i, j, color)
			if color.X > 0 || color.Y > 0 || color.Z > 0 {
				stats.LitPixels++
			}
		}
	}

	return stats, nil
}
