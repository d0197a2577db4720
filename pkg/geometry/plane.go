package geometry

import (
	"math"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
)

// Plane represents an infinite plane carrying its own frame: the
// frame's Z axis is the normal and its X/Y axes parameterize the
// texture coordinates in world units.
type Plane struct {
	Frame    core.Frame
	Material material.Material
}

// NewPlane creates a new plane through a point with the given normal
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Frame:    core.FrameFromZ(point, normal),
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	// A ray parallel to the plane never intersects
	denominator := ray.Direction.Dot(p.Frame.Z)
	if math.Abs(denominator) < 1e-8 {
		return Hit{}, false
	}

	t := p.Frame.O.Subtract(ray.Origin).Dot(p.Frame.Z) / denominator
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	point := ray.At(t)
	local := p.Frame.TransformPointInverse(point)

	frame := p.Frame
	frame.O = point

	return Hit{
		Frame:    frame,
		UV:       core.NewVec2(local.X, local.Y),
		T:        t,
		Material: p.Material,
	}, true
}
