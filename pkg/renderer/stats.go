package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	LitPixels   int           // Pixels with at least one non-zero channel
	TotalTiles  int           // Number of tiles the image was split into
	NumWorkers  int           // Workers used for the render
	Elapsed     time.Duration // Wall time of the render
}

// merge folds the per-tile counters of other into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.LitPixels += other.LitPixels
}

// Coverage returns the fraction of pixels that received light
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.LitPixels) / float64(s.TotalPixels)
}
