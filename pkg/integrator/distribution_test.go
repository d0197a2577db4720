package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/geometry"
	"github.com/mwest/go-distribution-raytracer/pkg/lights"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
	"github.com/mwest/go-distribution-raytracer/pkg/scene"
)

func emptyScene() *scene.Scene {
	camera := scene.NewCamera(scene.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	})
	return scene.NewScene(camera)
}

// planeScene is a single diffuse floor plane at y=0 facing up
func planeScene(albedo core.Vec3) *scene.Scene {
	s := emptyScene()
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewLambert(albedo)))
	return s
}

// downRay points straight down at the plane origin from height h
func downRay(h float64) core.Ray {
	return core.NewRay(core.NewVec3(0, h, 0), core.NewVec3(0, -1, 0))
}

func assertVec3Near(t *testing.T, got, expected core.Vec3, tolerance float64) {
	t.Helper()
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	opts := core.RenderOptions{Background: core.NewVec3(0.1, 0.2, 0.3)}
	di := NewDistributionIntegrator(opts)
	random := rand.New(rand.NewSource(42))

	got := di.RayColor(downRay(3), emptyScene(), random)

	if got != opts.Background {
		t.Errorf("Expected background %v, got %v", opts.Background, got)
	}
}

func TestFlatAmbientIsExactAndDrawsNothing(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.8)
	opts := core.RenderOptions{Ambient: core.NewVec3(0.2, 0.3, 0.4)}
	di := NewDistributionIntegrator(opts)

	used := rand.New(rand.NewSource(42))
	got := di.RayColor(downRay(3), planeScene(albedo), used)

	expected := opts.Ambient.MultiplyVec(albedo)
	if got != expected {
		t.Errorf("Expected flat ambient %v, got %v", expected, got)
	}

	// The flat ambient path must not consume any random draws
	fresh := rand.New(rand.NewSource(42))
	if used.Float64() != fresh.Float64() {
		t.Error("Expected the random stream to be untouched")
	}
}

func TestAmbientOcclusion(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.8)
	opts := core.RenderOptions{
		Ambient:        core.NewVec3(0.6, 0.6, 0.6),
		SamplesAmbient: 16,
	}
	di := NewDistributionIntegrator(opts)

	t.Run("open sky", func(t *testing.T) {
		random := rand.New(rand.NewSource(42))
		got := di.RayColor(downRay(3), planeScene(albedo), random)
		// Every occlusion ray escapes, so the term equals the flat value
		assertVec3Near(t, got, opts.Ambient.MultiplyVec(albedo), 1e-12)
	})

	t.Run("fully enclosed", func(t *testing.T) {
		s := planeScene(albedo)
		s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 50, material.NewLambert(albedo)))

		random := rand.New(rand.NewSource(42))
		got := di.RayColor(downRay(3), s, random)
		// Every occlusion ray hits the enclosing sphere from inside
		assertVec3Near(t, got, core.Vec3{}, 1e-12)
	})
}

func TestEmission(t *testing.T) {
	ke := core.NewVec3(2, 1.5, 0.5)
	mat := material.NewLambertEmission(ke, core.NewVec3(0.3, 0.3, 0.3))
	quad := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		4, 4, mat)

	front := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	behind := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	tests := []struct {
		name        string
		ray         core.Ray
		doubleSided bool
		expected    core.Vec3
	}{
		{"front face emits", front, false, ke},
		{"back face is dark", behind, false, core.Vec3{}},
		{"back face emits when double-sided", behind, true, ke},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyScene()
			s.Add(quad)
			di := NewDistributionIntegrator(core.RenderOptions{DoubleSided: tt.doubleSided})
			random := rand.New(rand.NewSource(42))

			got := di.RayColor(tt.ray, s, random)
			assertVec3Near(t, got, tt.expected, 1e-12)
		})
	}
}

func TestPointLightDirect(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.8)
	intensity := core.NewVec3(6, 3, 1.5)

	s := planeScene(albedo)
	s.AddLight(lights.NewPoint(core.NewVec3(0, 2, 0), intensity))

	di := NewDistributionIntegrator(core.RenderOptions{})
	random := rand.New(rand.NewSource(42))
	got := di.RayColor(downRay(3), s, random)

	// Light straight above at distance 2: intensity/d² * albedo * cos/pi
	expected := intensity.Multiply(1.0 / 4.0).MultiplyVec(albedo).Multiply(1.0 / math.Pi)
	assertVec3Near(t, got, expected, 1e-12)
}

func TestDirectLightingSkips(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.8)

	tests := []struct {
		name  string
		light lights.Light
	}{
		{"zero intensity", lights.NewPoint(core.NewVec3(0, 2, 0), core.Vec3{})},
		{"light below the horizon", lights.NewPoint(core.NewVec3(0, -2, 0), core.NewVec3(5, 5, 5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := planeScene(albedo)
			s.AddLight(tt.light)

			di := NewDistributionIntegrator(core.RenderOptions{})
			random := rand.New(rand.NewSource(42))
			got := di.RayColor(downRay(3), s, random)

			assertVec3Near(t, got, core.Vec3{}, 1e-12)
		})
	}
}

func TestShadowGating(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.8)
	intensity := core.NewVec3(6, 3, 1.5)

	build := func() *scene.Scene {
		s := planeScene(albedo)
		s.AddLight(lights.NewPoint(core.NewVec3(2, 2, 0), intensity))
		// A small blocker across the shadow segment, well off the
		// vertical camera ray
		s.Add(geometry.NewQuad(
			core.FrameFromZ(core.NewVec3(1, 1, 0), core.NewVec3(1, 1, 0)),
			1, 1, material.NewLambert(albedo)))
		return s
	}

	// The light sits at distance sqrt(8) along (1,1,0)/sqrt(2)
	cosTheta := 1.0 / math.Sqrt2
	lit := intensity.Multiply(1.0 / 8.0).MultiplyVec(albedo).Multiply(cosTheta / math.Pi)

	t.Run("shadows on", func(t *testing.T) {
		di := NewDistributionIntegrator(core.RenderOptions{Shadows: true})
		random := rand.New(rand.NewSource(42))
		got := di.RayColor(downRay(3), build(), random)
		assertVec3Near(t, got, core.Vec3{}, 1e-12)
	})

	t.Run("shadows off", func(t *testing.T) {
		di := NewDistributionIntegrator(core.RenderOptions{Shadows: false})
		random := rand.New(rand.NewSource(42))
		got := di.RayColor(downRay(3), build(), random)
		assertVec3Near(t, got, lit, 1e-12)
	})
}

func TestCameraLightsSwitch(t *testing.T) {
	albedo := core.NewVec3(1, 1, 1)
	red := core.NewVec3(4, 0, 0)
	blue := core.NewVec3(0, 0, 4)

	s := planeScene(albedo)
	s.AddLight(lights.NewPoint(core.NewVec3(0, 2, 0), red))
	s.AddCameraLight(lights.NewPoint(core.NewVec3(0, 2, 0), blue))

	expected := func(intensity core.Vec3) core.Vec3 {
		return intensity.Multiply(1.0 / 4.0).MultiplyVec(albedo).Multiply(1.0 / math.Pi)
	}

	t.Run("scene lights", func(t *testing.T) {
		di := NewDistributionIntegrator(core.RenderOptions{CameraLights: false})
		random := rand.New(rand.NewSource(42))
		got := di.RayColor(downRay(3), s, random)
		assertVec3Near(t, got, expected(red), 1e-12)
	})

	t.Run("camera lights", func(t *testing.T) {
		di := NewDistributionIntegrator(core.RenderOptions{CameraLights: true})
		random := rand.New(rand.NewSource(42))
		got := di.RayColor(downRay(3), s, random)
		assertVec3Near(t, got, expected(blue), 1e-12)
	})
}

func TestEnvironmentLightDirect(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.4, 0.8)
	intensity := core.NewVec3(0.3, 0.5, 0.7)

	s := planeScene(albedo)
	sky := lights.NewEnvironment(intensity, 1)
	sky.Frame.O = core.NewVec3(0, 5, 0)
	s.AddLight(sky)

	di := NewDistributionIntegrator(core.RenderOptions{Shadows: true})
	random := rand.New(rand.NewSource(42))
	got := di.RayColor(downRay(3), s, random)

	// Radiance pi*intensity from straight overhead: the pi cancels the
	// Lambert normalization, leaving intensity * albedo
	assertVec3Near(t, got, intensity.MultiplyVec(albedo), 1e-12)
}

func mirrorAndEmitterScene(reflection core.Vec3, ke core.Vec3) *scene.Scene {
	s := emptyScene()

	mirrorMat := material.NewPhong(core.Vec3{}, core.Vec3{}, 100)
	mirrorMat.Reflection = reflection
	s.Add(geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		4, 4, mirrorMat))

	s.Add(geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 0, 6), core.NewVec3(0, 0, -1)),
		4, 4, material.NewLambertEmission(ke, core.Vec3{})))

	return s
}

func TestSpecularRecursion(t *testing.T) {
	reflection := core.NewVec3(0.7, 0.6, 0.5)
	ke := core.NewVec3(2, 2, 2)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		opts     core.RenderOptions
		scene    *scene.Scene
		expected core.Vec3
	}{
		{
			"mirror sees the emitter",
			core.RenderOptions{Reflections: true, MaxDepth: 1},
			mirrorAndEmitterScene(reflection, ke),
			ke.MultiplyVec(reflection),
		},
		{
			"depth bound stops recursion",
			core.RenderOptions{Reflections: true, MaxDepth: 0},
			mirrorAndEmitterScene(reflection, ke),
			core.Vec3{},
		},
		{
			"zero reflection sample never recurses",
			core.RenderOptions{Reflections: true, MaxDepth: 1},
			mirrorAndEmitterScene(core.Vec3{}, ke),
			core.Vec3{},
		},
		{
			"reflections disabled",
			core.RenderOptions{Reflections: false, MaxDepth: 5},
			mirrorAndEmitterScene(reflection, ke),
			core.Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			di := NewDistributionIntegrator(tt.opts)
			random := rand.New(rand.NewSource(42))
			got := di.RayColor(ray, tt.scene, random)
			assertVec3Near(t, got, tt.expected, 1e-12)
		})
	}
}

func TestTexturesResolvedAtHit(t *testing.T) {
	checker := material.NewCheckerTexture(64, 64, 8,
		core.NewVec3(1, 1, 1), core.NewVec3(0.2, 0.2, 0.2))
	mat := material.NewTexturedLambert(core.NewVec3(0.9, 0.9, 0.9), checker)

	quad := geometry.NewQuad(
		core.FrameFromZ(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		2, 2, mat)
	s := emptyScene()
	s.Add(quad)

	opts := core.RenderOptions{Ambient: core.NewVec3(1, 1, 1)}
	di := NewDistributionIntegrator(opts)

	// Two hit points in different checker cells
	rayA := core.NewRay(core.NewVec3(0.05, 0.05, 5), core.NewVec3(0, 0, -1))
	rayB := core.NewRay(core.NewVec3(-0.2, 0.05, 5), core.NewVec3(0, 0, -1))

	colorAt := func(ray core.Ray) core.Vec3 {
		hit, ok := quad.Intersect(ray, 0.001, math.Inf(1))
		if !ok {
			t.Fatal("Expected the test ray to hit the quad")
		}
		random := rand.New(rand.NewSource(42))
		got := di.RayColor(ray, s, random)
		resolved := material.ResolveTextures(material.Material(mat), hit.UV)
		expected := material.DiffuseAlbedo(resolved)
		assertVec3Near(t, got, expected, 1e-12)
		return got
	}

	a := colorAt(rayA)
	b := colorAt(rayB)

	if a == b {
		t.Error("Expected different checker cells to shade differently")
	}
}

func TestAreaLightDrawsFreshSamples(t *testing.T) {
	s := planeScene(core.NewVec3(0.5, 0.5, 0.5))
	s.AddLight(lights.NewAreaLookAt(
		core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1),
		core.NewVec3(4, 4, 4), 1, 1, 4))

	di := NewDistributionIntegrator(core.RenderOptions{})
	used := rand.New(rand.NewSource(7))
	di.RayColor(downRay(3), s, used)

	// Four shadow samples consume two uniforms each, drawn
	// independently per sample
	fresh := rand.New(rand.NewSource(7))
	for i := 0; i < 8; i++ {
		fresh.Float64()
	}
	if used.Float64() != fresh.Float64() {
		t.Error("Expected eight uniform draws for four independent area samples")
	}
}
