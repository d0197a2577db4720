package material

import (
	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// Lambert represents a perfectly diffuse material
type Lambert struct {
	Diffuse        core.Vec3 // base reflectance
	DiffuseTexture *Texture  // optional modulation of the reflectance
}

// NewLambert creates a new diffuse material with a solid color
func NewLambert(diffuse core.Vec3) Lambert {
	return Lambert{Diffuse: diffuse}
}

// NewTexturedLambert creates a new diffuse material whose reflectance
// is the base color modulated by a texture
func NewTexturedLambert(diffuse core.Vec3, texture *Texture) Lambert {
	return Lambert{Diffuse: diffuse, DiffuseTexture: texture}
}

func (Lambert) isMaterial() {}
