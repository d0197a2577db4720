package renderer

import (
	"math/rand"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/integrator"
	"github.com/mwest/go-distribution-raytracer/pkg/scene"
)

// Renderer is the sequential render driver: one pass over the pixel
// grid with a single shared random stream consumed in a fixed order.
// Each call accumulates another round of samples into the buffer, so
// repeated calls progressively refine the image.
type Renderer struct {
	scene      *scene.Scene
	integrator *integrator.DistributionIntegrator
	options    core.RenderOptions
}

// NewRenderer creates a sequential renderer and prepares the scene's
// lights for sampling
func NewRenderer(scn *scene.Scene, options core.RenderOptions) *Renderer {
	scn.Preprocess()
	return &Renderer{
		scene:      scn,
		integrator: integrator.NewDistributionIntegrator(options),
		options:    options,
	}
}

// RenderOnce scans the pixel grid once, tracing the configured number
// of jittered camera rays per pixel. Row j of the image plane lands on
// buffer row height-1-j so the output is upright.
func (r *Renderer) RenderOnce(buffer *ImageBuffer, random *rand.Rand) {
	w := buffer.Width()
	h := buffer.Height()

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			for k := 0; k < r.options.Samples; k++ {
				u := (float64(i) + (0.5 - random.Float64())) / float64(w)
				v := (float64(j) + (0.5 - random.Float64())) / float64(h)

				ray := r.scene.Camera.GenerateRay(core.NewVec2(u, v), random)
				radiance := r.integrator.RayColor(ray, r.scene, random)

				buffer.AddSample(i, h-1-j, radiance)
			}
		}
	}
}
