package material

import (
	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// LambertEmission represents a diffuse material that also emits light
// from its front face
type LambertEmission struct {
	Emission core.Vec3 // emitted radiance
	Diffuse  core.Vec3 // base reflectance

	EmissionTexture *Texture
	DiffuseTexture  *Texture
}

// NewLambertEmission creates a new emitting diffuse material
func NewLambertEmission(emission, diffuse core.Vec3) LambertEmission {
	return LambertEmission{Emission: emission, Diffuse: diffuse}
}

func (LambertEmission) isMaterial() {}
