package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultMaxDepth is the number of mirror bounces a primary ray may take
const DefaultMaxDepth = 5

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Maximum ray bounce depth
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Raytracer drives a render: it splits the camera image into tiles and
// renders them in parallel until every pixel of the buffer is written.
type Raytracer struct {
	tracer Tracer
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(tracer Tracer, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = nopLogger{}
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	return &Raytracer{
		tracer: tracer,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render fills the camera buffer. It blocks until every tile has finished and
// returns the first tile error, if any.
func (rt *Raytracer) Render() (RenderStats, error) {
	if err := rt.camera.Validate(); err != nil {
		return RenderStats{}, err
	}

	startTime := time.Now()
	tiles := NewTileGrid(rt.camera.Width, rt.camera.Height, rt.config.TileSize)
	pool := NewWorkerPool(rt.tracer, rt.camera, rt.config.MaxDepth, rt.config.NumWorkers, len(tiles))

	rt.logger.Printf("Rendering %dx%d: %d tiles on %d workers...\n",
		rt.camera.Width, rt.camera.Height, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID})
	}

	stats := RenderStats{
		TotalTiles: len(tiles),
		NumWorkers: pool.GetNumWorkers(),
	}
	var firstErr error

	// Drain every result so no worker is left blocked on the result queue
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return stats, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil && firstErr == nil {
			firstErr = fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	stats.Elapsed = time.Since(startTime)
	if firstErr != nil {
		return stats, firstErr
	}

	rt.logger.Printf("Render completed in %v (%d/%d pixels lit)\n",
		stats.Elapsed, stats.LitPixels, stats.TotalPixels)
	return stats, nil
}
