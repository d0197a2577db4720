package geometry

import (
	"github.com/mwest/go-distribution-raytracer/pkg/core"
	"github.com/mwest/go-distribution-raytracer/pkg/material"
)

// Hit describes a ray-surface intersection. The frame sits at the hit
// point with Z as the outward geometric normal; shading code reorients
// it as needed. UV are the surface's texture coordinates at the point.
type Hit struct {
	Frame    core.Frame
	UV       core.Vec2
	T        float64
	Material material.Material
}

// Surface is anything a ray can intersect
type Surface interface {
	// Intersect returns the nearest hit with t in (tMin, tMax), if any
	Intersect(ray core.Ray, tMin, tMax float64) (Hit, bool)
}
