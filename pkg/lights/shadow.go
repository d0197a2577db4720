package lights

import (
	"math"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// ShadowSample is one illumination sample from a light toward a
// shading point. Dir points from the shading point toward the light;
// Dist is positive infinity for emitters that cannot be reached by a
// finite ray. A zero Radiance means the light cannot contribute.
type ShadowSample struct {
	Radiance core.Vec3
	Dir      core.Vec3
	Dist     float64
	Pdf      float64
}

// NewShadowSample evaluates the deterministic illumination of the
// world point p: the light center's radiance, direction and distance.
// The pdf is always one.
func NewShadowSample(l Light, p core.Vec3) ShadowSample {
	switch light := l.(type) {
	case *Point:
		return centerShadowSample(light.Frame, light.Intensity, p)
	case *Area:
		return centerShadowSample(light.Frame, light.Intensity, p)
	case *Directional:
		return ShadowSample{
			Radiance: light.Intensity,
			Dir:      light.Frame.TransformDirection(core.NewVec3(0, 0, -1)),
			Dist:     math.Inf(1),
			Pdf:      1,
		}
	case *Environment:
		pl := light.Frame.TransformPointInverse(p)
		return ShadowSample{
			Radiance: light.Intensity.Multiply(math.Pi),
			Dir:      light.Frame.TransformDirection(pl.Negate().Normalize()),
			Dist:     math.Inf(1),
			Pdf:      1,
		}
	default:
		panic(unknownLight(l))
	}
}

// centerShadowSample points at the light frame origin with
// inverse-square falloff
func centerShadowSample(frame core.Frame, intensity core.Vec3, p core.Vec3) ShadowSample {
	pl := frame.TransformPointInverse(p)
	return ShadowSample{
		Radiance: intensity.Multiply(1 / pl.LengthSquared()),
		Dir:      frame.TransformDirection(pl.Negate().Normalize()),
		Dist:     pl.Length(),
		Pdf:      1,
	}
}

// RandomShadowSample draws a stochastic illumination sample for p
// using the uniform pair (u, v). Area lights jitter the emitter point
// across their extent and weight the radiance by the emitter cosine;
// every other variant returns the deterministic sample unchanged.
func RandomShadowSample(l Light, p core.Vec3, u, v float64) ShadowSample {
	switch light := l.(type) {
	case *Point, *Directional, *Environment:
		return NewShadowSample(l, p)
	case *Area:
		// The jitter shifts the emitter origin along world axes, not
		// the light's own.
		frame := light.Frame
		frame.O = frame.O.Add(core.NewVec3((0.5-u)*light.Width, (0.5-v)*light.Height, 0))

		pl := frame.TransformPointInverse(p)
		dir := pl.Negate().Normalize()

		radiance := light.Intensity.Multiply(1 / pl.LengthSquared())
		// Emitter foreshortening, evaluated in the light's local coordinates
		radiance = radiance.Multiply(core.NewVec3(0, 0, 1).Dot(dir.Negate()))

		return ShadowSample{
			Radiance: radiance,
			Dir:      frame.TransformDirection(dir),
			Dist:     pl.Length(),
			Pdf:      1 / (light.Width * light.Height),
		}
	default:
		panic(unknownLight(l))
	}
}

// SampleBackground returns the radiance an escaped ray picks up from
// the light. Only environment lights contribute.
func SampleBackground(l Light, wo core.Vec3) core.Vec3 {
	switch light := l.(type) {
	case *Point, *Directional, *Area:
		return core.Vec3{}
	case *Environment:
		return light.Intensity
	default:
		panic(unknownLight(light))
	}
}

// ShadowSampleCount returns the number of shadow rays a light asks
// for: the configured count for area and environment lights, one for
// the point variants.
func ShadowSampleCount(l Light) int {
	switch light := l.(type) {
	case *Area:
		return light.ShadowSamples
	case *Environment:
		return light.ShadowSamples
	case *Point, *Directional:
		return 1
	default:
		panic(unknownLight(light))
	}
}
