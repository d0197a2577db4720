package lights

import (
	"math"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// InitSampling builds or rebuilds a light's importance-sampling cache.
// Only environment lights with an environment map and importance
// sampling enabled carry one; the call is a no-op for everything else.
// The owner must call it again after changing the map.
func InitSampling(l Light) {
	switch light := l.(type) {
	case *Point, *Directional, *Area:
		return
	case *Environment:
		if !light.ImportanceSampling || light.EnvMap == nil {
			return
		}
		w, h := light.EnvMap.Width, light.EnvMap.Height
		weights := make([]float64, w*h)
		for v := 0; v < h; v++ {
			// Weight rows by sin(theta) so poles don't dominate the
			// equirectangular grid
			sinTheta := math.Sin(math.Pi * (float64(v) + 0.5) / float64(h))
			for u := 0; u < w; u++ {
				weights[v*w+u] = light.EnvMap.Texel(u, v).Mean() * sinTheta
			}
		}
		light.importance = core.NewDistribution2D(weights, w, h)
	default:
		panic(unknownLight(l))
	}
}

// InitSamplingAll prepares every light in the collection
func InitSamplingAll(lights []Light) {
	for _, l := range lights {
		InitSampling(l)
	}
}

// SampleDirection draws a world direction toward the environment in
// proportion to the importance distribution, returning the direction
// and its solid-angle pdf. Without a built distribution the pdf is
// zero and the direction unusable.
func (e *Environment) SampleDirection(sample core.Vec2) (core.Vec3, float64) {
	if e.importance == nil {
		return core.Vec3{}, 0
	}
	uv, mapPdf := e.importance.SampleContinuous(sample)
	if mapPdf == 0 {
		return core.Vec3{}, 0
	}

	theta := uv.Y * math.Pi
	phi := uv.X * 2 * math.Pi
	sinTheta := math.Sin(theta)
	if sinTheta == 0 {
		return core.Vec3{}, 0
	}

	local := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), math.Cos(theta))
	return e.Frame.TransformDirection(local), mapPdf / (2 * math.Pi * math.Pi * sinTheta)
}

// DirectionPdf returns the solid-angle pdf SampleDirection reports for
// a world direction
func (e *Environment) DirectionPdf(dir core.Vec3) float64 {
	if e.importance == nil {
		return 0
	}
	local := e.Frame.TransformDirectionInverse(dir)
	theta := math.Acos(max(-1, min(1, local.Z)))
	sinTheta := math.Sin(theta)
	if sinTheta == 0 {
		return 0
	}
	phi := math.Atan2(local.Y, local.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
	return e.importance.Pdf(uv) / (2 * math.Pi * math.Pi * sinTheta)
}
