package material

import (
	"fmt"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// Material is the closed set of surface materials understood by the
// shading operations in this package. Exactly three variants exist:
// Lambert, Phong and LambertEmission. Operations dispatch on the
// variant exhaustively; an unknown variant is a fatal programming
// error, not a recoverable condition.
type Material interface {
	isMaterial()
}

// BrdfSample is one draw from a material sampling strategy. BrdfCos
// holds the BRDF times the incident cosine for the sampled direction
// Wi. A zero BrdfCos means the draw carries no energy and callers
// should not spawn a ray for it.
type BrdfSample struct {
	BrdfCos core.Vec3
	Wi      core.Vec3
	Pdf     float64
}

// zeroBrdfSample returns a no-contribution sample with Pdf 1 so that
// callers may divide by Pdf unconditionally.
func zeroBrdfSample() BrdfSample {
	return BrdfSample{Pdf: 1}
}

func ensureResolved(m Material) {
	if HasTextures(m) {
		panic("material: shading query on a material that still carries textures")
	}
}

func unknownMaterial(m Material) string {
	return fmt.Sprintf("material: unknown material variant %T", m)
}
