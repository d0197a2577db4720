package core

// RenderOptions controls shading and integration for a render.
// Options are fixed for the duration of a render; samplers receive
// their random stream as an explicit parameter instead.
type RenderOptions struct {
	Background     Vec3 // radiance for rays that leave the scene
	Ambient        Vec3 // ambient illumination level
	Samples        int  // camera rays per pixel
	SamplesAmbient int  // occlusion rays per shading point, 0 selects flat ambient
	MaxDepth       int  // specular recursion bound
	DoubleSided    bool // face shading frames toward the viewer
	Reflections    bool // trace specular reflections
	Shadows        bool // occlusion-test shadow rays
	CameraLights   bool // light with the camera rig instead of the scene lights
}

// DefaultRenderOptions returns the options used by the built-in scenes
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Background:     NewVec3(0.05, 0.05, 0.05),
		Ambient:        NewVec3(0.2, 0.2, 0.2),
		Samples:        4,
		SamplesAmbient: 0,
		MaxDepth:       2,
		DoubleSided:    false,
		Reflections:    true,
		Shadows:        true,
		CameraLights:   false,
	}
}
