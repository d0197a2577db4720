package scene

import (
	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/geometry"
	"github.com/mwest/go-distribution-raytracer/pkg/lights"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box with quad walls, a
// pendant area light and a camera headlight rig for preview renders
func NewCornellScene(aspectRatio float64) (*Scene, core.RenderOptions) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 3.6), // Position camera outside the box looking in
		LookAt:      core.NewVec3(0, 1, 0),   // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: aspectRatio,
	})

	s := NewScene(camera)

	// Create materials
	white := material.NewLambert(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambert(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambert(core.NewVec3(0.12, 0.45, 0.15))

	// Checkered floor
	checker := material.NewCheckerTexture(64, 64, 8,
		core.NewVec3(1.0, 1.0, 1.0),
		core.NewVec3(0.35, 0.35, 0.35))
	floorMat := material.NewTexturedLambert(core.NewVec3(0.73, 0.73, 0.73), checker)

	// The box spans x,z in [-1,1] and y in [0,2]
	boxSize := 2.0

	floor := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		boxSize, boxSize, floorMat)
	ceiling := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)),
		boxSize, boxSize, white)
	backWall := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 1, -1), core.NewVec3(0, 0, 1)),
		boxSize, boxSize, white)
	leftWall := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(-1, 1, 0), core.NewVec3(1, 0, 0)),
		boxSize, boxSize, red)
	rightWall := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(1, 1, 0), core.NewVec3(-1, 0, 0)),
		boxSize, boxSize, green)

	s.Add(floor, ceiling, backWall, leftWall, rightWall)

	// Two spheres in the box

	// Left sphere (matte)
	matte := geometry.NewSphere(
		core.NewVec3(-0.45, 0.35, 0.25), 0.35,
		material.NewLambert(core.NewVec3(0.5, 0.5, 0.7)))

	// Right sphere (glossy mirror)
	mirrorMat := material.NewPhong(
		core.NewVec3(0.05, 0.05, 0.05),
		core.NewVec3(0.4, 0.4, 0.4),
		200)
	mirrorMat.Reflection = core.NewVec3(0.7, 0.7, 0.7)
	mirror := geometry.NewSphere(core.NewVec3(0.45, 0.4, -0.3), 0.4, mirrorMat)

	s.Add(matte, mirror)

	// Pendant area light hanging below the ceiling, radiating down
	s.AddLight(lights.NewAreaLookAt(
		core.NewVec3(0, 1.66, 0), // eye
		core.NewVec3(0, 0, 0),    // radiate toward the floor
		core.NewVec3(0, 0, 1),    // up
		core.NewVec3(3, 3, 3),    // intensity
		0.65, 0.65,               // extent
		4))                       // shadow samples

	// Headlight rig used when rendering with camera lights
	s.AddCameraLight(lights.NewPoint(camera.Origin(), core.NewVec3(8, 8, 8)))

	opts := core.DefaultRenderOptions()
	opts.Background = core.NewVec3(0, 0, 0)
	opts.Ambient = core.NewVec3(0.08, 0.08, 0.08)
	opts.MaxDepth = 3

	return s, opts
}

// NewShowcaseScene creates an open scene exercising every light
// variant: a point light, a directional sun, a gradient environment
// with importance sampling and an area light paired with a visible
// emissive panel.
func NewShowcaseScene(aspectRatio float64) (*Scene, core.RenderOptions) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 1.4, 4.2),
		LookAt:      core.NewVec3(0, 0.7, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35.0,
		AspectRatio: aspectRatio,
	})

	s := NewScene(camera)

	// Checkered ground plane
	checker := material.NewCheckerTexture(64, 64, 8,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.3, 0.3, 0.35))
	ground := geometry.NewPlane(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		material.NewTexturedLambert(core.NewVec3(0.8, 0.8, 0.8), checker))

	// Three spheres: matte, glossy and glowing
	matte := geometry.NewSphere(
		core.NewVec3(-1.1, 0.5, 0), 0.5,
		material.NewLambert(core.NewVec3(0.65, 0.3, 0.25)))

	glossyMat := material.NewPhong(
		core.NewVec3(0.2, 0.25, 0.4),
		core.NewVec3(0.5, 0.5, 0.5),
		60)
	glossyMat.Reflection = core.NewVec3(0.25, 0.25, 0.25)
	glossy := geometry.NewSphere(core.NewVec3(0.1, 0.6, -0.4), 0.6, glossyMat)

	glow := geometry.NewSphere(
		core.NewVec3(1.25, 0.35, 0.7), 0.35,
		material.NewLambertEmission(
			core.NewVec3(1.5, 1.2, 0.6),
			core.NewVec3(0.4, 0.35, 0.2)))

	s.Add(ground, matte, glossy, glow)

	// Point light high on the left
	s.AddLight(lights.NewPoint(core.NewVec3(-2.5, 3, 2), core.NewVec3(6, 6, 6)))

	// Directional sun falling from the upper right
	s.AddLight(lights.NewDirectional(
		core.NewVec3(-0.4, -1, -0.3),
		core.NewVec3(0.9, 0.85, 0.7)))

	// Environment light with a gradient sky, importance sampled
	sky := lights.NewEnvironment(core.NewVec3(0.35, 0.4, 0.5), 4)
	sky.Frame.O = core.NewVec3(0, 5, 0)
	sky.EnvMap = material.NewGradientTexture(16, 8,
		core.NewVec3(0.5, 0.65, 1.0),  // zenith blue
		core.NewVec3(0.9, 0.75, 0.55)) // warm horizon
	s.AddLight(sky)

	// Backdrop panel: an area light paired with an emissive quad so the
	// fixture is visible in the frame
	panelFrame := lights.LookAt(
		core.NewVec3(0, 1.2, -2.5),
		core.NewVec3(0, 1.2, 0),
		core.NewVec3(0, 1, 0))
	panelEmission := core.NewVec3(3, 3, 3)
	s.AddLight(lights.NewArea(panelFrame, panelEmission, 1.5, 1.0, 4))
	s.Add(geometry.NewQuad(panelFrame, 1.5, 1.0,
		material.NewLambertEmission(panelEmission, core.NewVec3(0.2, 0.2, 0.2))))

	// Headlight rig
	s.AddCameraLight(lights.NewPoint(camera.Origin(), core.NewVec3(10, 10, 10)))

	opts := core.DefaultRenderOptions()
	opts.Background = core.NewVec3(0.10, 0.12, 0.18)
	opts.Ambient = core.NewVec3(0.15, 0.15, 0.15)
	opts.SamplesAmbient = 4
	opts.MaxDepth = 3

	return s, opts
}
