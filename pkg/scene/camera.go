package scene

import (
	"math"
	"math/rand"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// CameraConfig holds the camera parameters
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // vertical field of view in degrees
	AspectRatio   float64
	Aperture      float64 // lens diameter, 0 renders a pinhole
	FocusDistance float64 // distance to the focus plane, 0 focuses on the look-at point
}

// Camera generates primary rays through a thin lens
type Camera struct {
	frame      core.Frame
	horizontal core.Vec3
	vertical   core.Vec3
	lowerLeft  core.Vec3
	lensRadius float64
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	frame := core.LookAtFrame(config.LookFrom, config.LookAt, config.Up)

	focus := config.FocusDistance
	if focus == 0 {
		focus = config.LookAt.Subtract(config.LookFrom).Length()
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focus
	viewportWidth := viewportHeight * config.AspectRatio

	horizontal := frame.X.Multiply(viewportWidth)
	vertical := frame.Y.Multiply(viewportHeight)
	lowerLeft := frame.O.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(frame.Z.Multiply(focus))

	return &Camera{
		frame:      frame,
		horizontal: horizontal,
		vertical:   vertical,
		lowerLeft:  lowerLeft,
		lensRadius: config.Aperture / 2,
	}
}

// GenerateRay maps image coordinates uv in [0,1]² to a primary ray
// with a unit direction, jittering the origin across the lens when the
// aperture is open. uv (0,0) is the bottom-left of the image plane.
func (c *Camera) GenerateRay(uv core.Vec2, random *rand.Rand) core.Ray {
	origin := c.frame.O
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		origin = origin.Add(c.frame.X.Multiply(rd.X)).Add(c.frame.Y.Multiply(rd.Y))
	}

	target := c.lowerLeft.
		Add(c.horizontal.Multiply(uv.X)).
		Add(c.vertical.Multiply(uv.Y))

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

// Origin returns the camera position, where headlight rigs attach
func (c *Camera) Origin() core.Vec3 {
	return c.frame.O
}
