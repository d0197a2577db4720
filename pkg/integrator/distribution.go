package integrator

import (
	"math"
	"math/rand"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/geometry"
	"github.com/mwest/go-distribution-raytracer/pkg/lights"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
	"github.com/mwest/go-distribution-raytracer/pkg/scene"
)

// shadowEpsilon trims occlusion segments at both ends so a surface
// never shadows itself and a light fixture never blocks its own light
const shadowEpsilon = 0.001

// DistributionIntegrator estimates radiance by distribution ray
// tracing: a stochastic ambient occlusion term, sampled direct
// lighting with soft shadows and recursive specular reflection.
type DistributionIntegrator struct {
	options core.RenderOptions
}

// NewDistributionIntegrator creates an integrator with the given options
func NewDistributionIntegrator(options core.RenderOptions) *DistributionIntegrator {
	return &DistributionIntegrator{options: options}
}

// Options returns the render options the integrator was built with
func (di *DistributionIntegrator) Options() core.RenderOptions {
	return di.options
}

// RayColor estimates the radiance arriving along a camera ray
func (di *DistributionIntegrator) RayColor(ray core.Ray, scn *scene.Scene, random *rand.Rand) core.Vec3 {
	return di.rayColor(ray, scn, random, 0)
}

func (di *DistributionIntegrator) rayColor(ray core.Ray, scn *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	hit, found := scn.IntersectNearest(ray)
	if !found {
		return di.options.Background
	}

	frame := hit.Frame
	wo := ray.Direction.Negate()
	if di.options.DoubleSided {
		frame = frame.FaceForward(ray.Direction)
	}
	mat := material.ResolveTextures(hit.Material, hit.UV)

	var c core.Vec3
	c = c.Add(di.ambientTerm(hit, mat, scn, random))
	c = c.Add(material.Emission(mat, frame, wo))
	c = c.Add(di.directLighting(frame, mat, wo, scn, random))

	if di.options.Reflections && depth < di.options.MaxDepth {
		sample := material.SampleReflection(mat, frame, wo)
		if !sample.BrdfCos.IsZero() {
			reflected := core.NewRay(frame.O, sample.Wi)
			c = c.Add(di.rayColor(reflected, scn, random, depth+1).MultiplyVec(sample.BrdfCos))
		}
	}

	return c
}

// ambientTerm computes the ambient contribution. With a zero sample
// count it is the flat product of the ambient color and the diffuse
// albedo, consuming no random draws. Otherwise it casts occlusion rays
// into the hemisphere of the raw intersection frame and scales the
// flat term by the fraction that escaped.
func (di *DistributionIntegrator) ambientTerm(hit geometry.Hit, mat material.Material, scn *scene.Scene, random *rand.Rand) core.Vec3 {
	albedo := material.DiffuseAlbedo(mat)
	flat := di.options.Ambient.MultiplyVec(albedo)
	if di.options.SamplesAmbient == 0 {
		return flat
	}

	visible := 0
	for i := 0; i < di.options.SamplesAmbient; i++ {
		hemiDir := core.NewVec3(
			0.5-random.Float64(),
			0.5-random.Float64(),
			math.Abs(0.5-random.Float64())).Normalize()
		hemiDir = hit.Frame.TransformDirection(hemiDir)
		hemiRay := core.NewRay(hit.Frame.O, hemiDir)
		if !scn.IntersectAny(hemiRay, shadowEpsilon, math.Inf(1)) {
			visible++
		}
	}
	return flat.Multiply(float64(visible) / float64(di.options.SamplesAmbient))
}

// directLighting sums the contribution of every active light. Area
// lights are sampled with an independent stochastic shadow sample per
// configured shadow ray and averaged; every other variant needs a
// single sample since its stochastic draw is deterministic.
func (di *DistributionIntegrator) directLighting(frame core.Frame, mat material.Material, wo core.Vec3, scn *scene.Scene, random *rand.Rand) core.Vec3 {
	var c core.Vec3

	for _, l := range scn.ActiveLights(di.options.CameraLights) {
		count := 1
		if _, isArea := l.(*lights.Area); isArea {
			count = lights.ShadowSampleCount(l)
		}

		for i := 0; i < count; i++ {
			ss := lights.RandomShadowSample(l, frame.O, random.Float64(), random.Float64())
			if ss.Radiance.IsZero() {
				continue
			}

			cl := ss.Radiance.
				MultiplyVec(material.BrdfCos(mat, frame, ss.Dir, wo)).
				Multiply(1 / ss.Pdf)
			if cl.IsZero() {
				continue
			}

			if di.options.Shadows {
				shadowRay := core.NewRay(frame.O, ss.Dir)
				if scn.IntersectAny(shadowRay, shadowEpsilon, ss.Dist-shadowEpsilon) {
					continue
				}
			}

			c = c.Add(cl.Multiply(1 / float64(count)))
		}
	}

	return c
}
