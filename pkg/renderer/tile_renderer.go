package renderer

import (
	"image"
	"math/rand"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/integrator"
	"github.com/mwest/go-distribution-raytracer/pkg/scene"
)

// TileRenderer renders rectangular pixel regions into a shared buffer.
// It holds only read-only state, so a single instance is safe to share
// across workers as long as their tiles never overlap.
type TileRenderer struct {
	scene      *scene.Scene
	integrator *integrator.DistributionIntegrator
}

// NewTileRenderer creates a tile renderer for the scene
func NewTileRenderer(scn *scene.Scene, options core.RenderOptions) *TileRenderer {
	return &TileRenderer{
		scene:      scn,
		integrator: integrator.NewDistributionIntegrator(options),
	}
}

// RenderBounds tops every pixel inside bounds up to targetSamples
// accumulated samples. Buffer row y displays image-plane row
// height-1-y, so the camera coordinate is computed from the flipped
// row index.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, buffer *ImageBuffer, random *rand.Rand, targetSamples int) RenderStats {
	w := buffer.Width()
	h := buffer.Height()

	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			j := h - 1 - y
			samplesUsed := 0

			for buffer.Samples(x, y) < targetSamples {
				u := (float64(x) + (0.5 - random.Float64())) / float64(w)
				v := (float64(j) + (0.5 - random.Float64())) / float64(h)

				ray := tr.scene.Camera.GenerateRay(core.NewVec2(u, v), random)
				buffer.AddSample(x, y, tr.integrator.RayColor(ray, tr.scene, random))
				samplesUsed++
			}

			stats.TotalSamples += samplesUsed
			stats.MinSamples = min(stats.MinSamples, samplesUsed)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}
