package geometry

import (
	"math"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
)

// Quad represents a rectangle centered on its frame origin, spanning
// Width along the local X axis and Height along Y. Area lights use the
// same placement, so a quad with a light's frame and extent gives the
// emitter visible geometry.
type Quad struct {
	Frame    core.Frame
	Width    float64
	Height   float64
	Material material.Material
}

// NewQuad creates a new centered rectangle
func NewQuad(frame core.Frame, width, height float64, mat material.Material) *Quad {
	return &Quad{
		Frame:    frame,
		Width:    width,
		Height:   height,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the quad
func (q *Quad) Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denominator := ray.Direction.Dot(q.Frame.Z)
	if math.Abs(denominator) < 1e-8 {
		return Hit{}, false
	}

	t := q.Frame.O.Subtract(ray.Origin).Dot(q.Frame.Z) / denominator
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	point := ray.At(t)
	local := q.Frame.TransformPointInverse(point)
	if math.Abs(local.X) > q.Width/2 || math.Abs(local.Y) > q.Height/2 {
		return Hit{}, false
	}

	frame := q.Frame
	frame.O = point

	return Hit{
		Frame:    frame,
		UV:       core.NewVec2(local.X/q.Width+0.5, local.Y/q.Height+0.5),
		T:        t,
		Material: q.Material,
	}, true
}
