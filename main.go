package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene      string
	ScenesDir  string
	Output     string
	Width      int
	Height     int
	NumWorkers int
	TileSize   int
	List       bool
	Help       bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	if config.List {
		if err := listScenes(config.ScenesDir); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	if err := run(config, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.Scene, "scene", "default", "Scene: built-in name, json:<name> or path to a .json file")
	flag.StringVar(&config.ScenesDir, "scenes", "scenes", "Directory searched for JSON scene files")
	flag.StringVar(&config.Output, "output", "image.png", "Output PNG file")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.BoolVar(&config.List, "list", false, "List available scenes and exit")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  default - Two mirror spheres inside a box of six giant spheres")
	fmt.Println("  mirrors - A diffuse sphere between two large facing mirrors")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  raytracer --scene=default --output=image.png")
	fmt.Println("  raytracer --scene=scenes/my-scene.json --width=256 --height=256")
	fmt.Println("  raytracer --list")
}

func listScenes(dir string) error {
	scenes, err := scene.ListScenes(dir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("  %-24s %s\n", info.ID, info.Name)
		if info.Description != "" {
			fmt.Printf("  %-24s %s\n", "", info.Description)
		}
	}
	return nil
}

// run renders the configured scene and writes it to config.Output
func run(config Config, logger core.Logger) error {
	s, err := createScene(config)
	if err != nil {
		return err
	}

	if config.NumWorkers > 0 {
		s.RenderConfig.NumWorkers = config.NumWorkers
	}
	if config.TileSize > 0 {
		s.RenderConfig.TileSize = config.TileSize
	}

	logger.Printf("Scene: %s (%d spheres)\n", config.Scene, s.GetPrimitiveCount())

	stats, err := s.Render(logger)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := saveImage(s.Camera, config.Output); err != nil {
		return err
	}

	logger.Printf("%d tiles, %.1f%% of pixels lit\n", stats.TotalTiles, stats.Coverage()*100)
	logger.Printf("Render saved as %s\n", config.Output)
	return nil
}

// createScene resolves the scene and applies a resolution override. Width and
// height must be given together.
func createScene(config Config) (*scene.Scene, error) {
	if (config.Width > 0) != (config.Height > 0) {
		return nil, fmt.Errorf("width and height must be set together")
	}

	s, err := scene.CreateScene(config.Scene, config.ScenesDir)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.SetResolution(config.Width, config.Height)
	}
	return s, nil
}

// saveImage writes the camera buffer as PNG, creating the parent directory
func saveImage(camera *renderer.Camera, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	return loaders.WritePNG(path, camera.Image, camera.Width, camera.Height, renderer.Channels, camera.Stride())
}
