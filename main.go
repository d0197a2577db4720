package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/renderer"
	"github.com/mwest/go-distribution-raytracer/pkg/scene"
)

// createScene builds one of the built-in scenes by name
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, core.RenderOptions, error) {
	switch sceneType {
	case "cornell":
		scn, options := scene.NewCornellScene(aspectRatio)
		return scn, options, nil
	case "showcase":
		scn, options := scene.NewShowcaseScene(aspectRatio)
		return scn, options, nil
	default:
		return nil, core.RenderOptions{}, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// createOutputDir returns the per-scene output directory path
func createOutputDir(baseDir, sceneType string) string {
	return filepath.Join(baseDir, sceneType)
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cornell", "Scene type: 'cornell' or 'showcase'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 0, "Samples per pixel (0 uses the scene default)")
	passes := flag.Int("passes", 5, "Number of progressive passes")
	workers := flag.Int("workers", 0, "Number of render workers (0 uses all CPUs)")
	output := flag.String("output", "output", "Base output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Distribution Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cornell  - Cornell box with quad walls, spheres and an area light")
		fmt.Println("  showcase - Open scene exercising every material and light type")
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Distribution Raytracer...")

	aspectRatio := float64(*width) / float64(*height)
	selectedScene, options, err := createScene(*sceneType, aspectRatio)
	if err != nil {
		fmt.Printf("%v. Available scenes: cornell, showcase.\n", err)
		return
	}
	fmt.Printf("Using %s scene...\n", *sceneType)

	if *samples > 0 {
		options.Samples = *samples
	}

	// Create output directory for this scene type
	outputDir := createOutputDir(*output, *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	config := renderer.DefaultProgressiveConfig()
	config.MaxPasses = *passes
	config.NumWorkers = *workers

	progressive := renderer.NewProgressiveRenderer(selectedScene, options, *width, *height, config, renderer.NewDefaultLogger())

	// Render all passes, keeping the most refined image
	startTime := time.Now()
	passChan, _, errChan := progressive.RenderProgressive(context.Background(), renderer.ProgressiveOptions{})

	var final renderer.PassResult
	for result := range passChan {
		final = result
	}
	if err := <-errChan; err != nil {
		fmt.Printf("Render failed: %v\n", err)
		return
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		final.Stats.AverageSamples, final.Stats.MinSamples, final.Stats.MaxSamplesUsed)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, final.Image); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
