package scene

import (
	"math"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/geometry"
	"github.com/mwest/go-distribution-raytracer/pkg/lights"
)

// intersectionEpsilon offsets ray origins off the surface they start on
const intersectionEpsilon = 0.001

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *Camera
	Surfaces     []geometry.Surface
	Lights       []lights.Light
	CameraLights []lights.Light
}

// NewScene creates an empty scene with the given camera
func NewScene(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// AddLight appends scene lights
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// AddCameraLight appends lights that follow the camera
func (s *Scene) AddCameraLight(ls ...lights.Light) {
	s.CameraLights = append(s.CameraLights, ls...)
}

// ActiveLights selects between the scene lights and the camera rig
func (s *Scene) ActiveLights(useCameraLights bool) []lights.Light {
	if useCameraLights {
		return s.CameraLights
	}
	return s.Lights
}

// Preprocess prepares the lights for sampling. Call once after the
// scene is assembled and before rendering starts.
func (s *Scene) Preprocess() {
	lights.InitSamplingAll(s.Lights)
	lights.InitSamplingAll(s.CameraLights)
}

// IntersectNearest returns the closest surface hit along the ray
func (s *Scene) IntersectNearest(ray core.Ray) (geometry.Hit, bool) {
	closest := math.Inf(1)
	var nearest geometry.Hit
	found := false

	for _, surface := range s.Surfaces {
		if hit, ok := surface.Intersect(ray, intersectionEpsilon, closest); ok {
			nearest = hit
			closest = hit.T
			found = true
		}
	}

	return nearest, found
}

// IntersectAny reports whether any surface blocks the ray segment.
// Shadow tests use this with the segment trimmed at both ends.
func (s *Scene) IntersectAny(ray core.Ray, tMin, tMax float64) bool {
	for _, surface := range s.Surfaces {
		if _, ok := surface.Intersect(ray, tMin, tMax); ok {
			return true
		}
	}
	return false
}
