package material

import (
	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// Phong represents a glossy material with a diffuse base, a specular
// lobe and an optional mirror reflection. UseReflected selects the
// lobe formulation: the reflected-direction form when true, the
// half-vector form when false.
type Phong struct {
	Diffuse      core.Vec3
	Specular     core.Vec3
	Exponent     float64
	Reflection   core.Vec3 // mirror reflection coefficient, zero disables reflection rays
	BlurSize     float64   // side length of the blurred-reflection sampling square
	UseReflected bool

	DiffuseTexture    *Texture
	SpecularTexture   *Texture
	ExponentTexture   *Texture
	ReflectionTexture *Texture
}

// NewPhong creates a new glossy material with the half-vector lobe
func NewPhong(diffuse, specular core.Vec3, exponent float64) Phong {
	return Phong{Diffuse: diffuse, Specular: specular, Exponent: exponent}
}

func (Phong) isMaterial() {}
