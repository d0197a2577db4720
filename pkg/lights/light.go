package lights

import (
	"fmt"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
)

// Light is the closed set of light sources understood by the sampling
// operations in this package. Exactly four variants exist: Point,
// Directional, Area and Environment. Operations dispatch on the
// variant exhaustively; an unknown variant is a fatal programming
// error, not a recoverable condition.
type Light interface {
	isLight()
}

// Point is an omnidirectional emitter at its frame origin
type Point struct {
	Frame     core.Frame
	Intensity core.Vec3
}

// NewPoint creates a point light at the given position
func NewPoint(position, intensity core.Vec3) *Point {
	frame := core.IdentityFrame()
	frame.O = position
	return &Point{Frame: frame, Intensity: intensity}
}

func (*Point) isLight() {}

// Directional is a parallel emitter: light flows along the frame's +Z
// axis, so shadow rays leave shading points along -Z.
type Directional struct {
	Frame     core.Frame
	Intensity core.Vec3
}

// NewDirectional creates a directional light whose light flows along dir
func NewDirectional(dir, intensity core.Vec3) *Directional {
	return &Directional{Frame: core.FrameFromZ(core.Vec3{}, dir), Intensity: intensity}
}

func (*Directional) isLight() {}

// Area is a rectangular emitter centered on its frame origin, spanning
// Width along the local X axis and Height along Y, radiating toward
// the +Z side.
type Area struct {
	Frame         core.Frame
	Intensity     core.Vec3
	Width         float64
	Height        float64
	ShadowSamples int
}

// NewArea creates an area light with the given placement and extent.
// ShadowSamples is clamped to at least one.
func NewArea(frame core.Frame, intensity core.Vec3, width, height float64, shadowSamples int) *Area {
	return &Area{
		Frame:         frame,
		Intensity:     intensity,
		Width:         width,
		Height:        height,
		ShadowSamples: max(1, shadowSamples),
	}
}

// NewAreaLookAt creates an area light at eye radiating toward center
func NewAreaLookAt(eye, center, up, intensity core.Vec3, width, height float64, shadowSamples int) *Area {
	return NewArea(LookAt(eye, center, up), intensity, width, height, shadowSamples)
}

func (*Area) isLight() {}

// Environment surrounds the scene with radiance arriving from every
// direction. EnvMap drives the importance distribution built by
// InitSampling; Hemisphere marks maps authored to cover only the upper
// half of the frame.
type Environment struct {
	Frame              core.Frame
	Intensity          core.Vec3
	EnvMap             *material.Texture
	Hemisphere         bool
	ShadowSamples      int
	ImportanceSampling bool

	// built by InitSampling, owned exclusively by this light
	importance *core.Distribution2D
}

// NewEnvironment creates an environment light with constant intensity.
// ShadowSamples is clamped to at least one.
func NewEnvironment(intensity core.Vec3, shadowSamples int) *Environment {
	return &Environment{
		Frame:              core.IdentityFrame(),
		Intensity:          intensity,
		ShadowSamples:      max(1, shadowSamples),
		ImportanceSampling: true,
	}
}

func (*Environment) isLight() {}

// LookAt orients a light placed at eye so it radiates toward center.
// The up direction seeds the frame's Y axis and must not be parallel
// to the eye-center line.
func LookAt(eye, center, up core.Vec3) core.Frame {
	z := center.Subtract(eye).Normalize()
	y := up.Subtract(z.Multiply(up.Dot(z))).Normalize()
	x := y.Cross(z)
	return core.Frame{O: eye, X: x, Y: y, Z: z}
}

func unknownLight(l Light) string {
	return fmt.Sprintf("lights: unknown light variant %T", l)
}
