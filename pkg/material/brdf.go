package material

import (
	"math"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// HasTextures reports whether any coefficient of the material is
// still backed by a texture
func HasTextures(m Material) bool {
	switch mat := m.(type) {
	case Lambert:
		return mat.DiffuseTexture != nil
	case Phong:
		return mat.DiffuseTexture != nil || mat.SpecularTexture != nil ||
			mat.ExponentTexture != nil || mat.ReflectionTexture != nil
	case LambertEmission:
		return mat.EmissionTexture != nil || mat.DiffuseTexture != nil
	default:
		panic(unknownMaterial(m))
	}
}

// ResolveTextures returns a texture-free copy of the material whose
// coefficients are the base values evaluated against their textures at
// the given surface coordinate. Materials without textures are
// returned unchanged.
func ResolveTextures(m Material, uv core.Vec2) Material {
	if !HasTextures(m) {
		return m
	}
	switch mat := m.(type) {
	case Lambert:
		mat.Diffuse = resolveColor(mat.Diffuse, mat.DiffuseTexture, uv)
		mat.DiffuseTexture = nil
		return mat
	case Phong:
		mat.Diffuse = resolveColor(mat.Diffuse, mat.DiffuseTexture, uv)
		mat.Specular = resolveColor(mat.Specular, mat.SpecularTexture, uv)
		mat.Exponent = resolveScalar(mat.Exponent, mat.ExponentTexture, uv)
		mat.Reflection = resolveColor(mat.Reflection, mat.ReflectionTexture, uv)
		mat.DiffuseTexture, mat.SpecularTexture = nil, nil
		mat.ExponentTexture, mat.ReflectionTexture = nil, nil
		return mat
	case LambertEmission:
		mat.Emission = resolveColor(mat.Emission, mat.EmissionTexture, uv)
		mat.Diffuse = resolveColor(mat.Diffuse, mat.DiffuseTexture, uv)
		mat.EmissionTexture, mat.DiffuseTexture = nil, nil
		return mat
	default:
		panic(unknownMaterial(m))
	}
}

func resolveColor(base core.Vec3, texture *Texture, uv core.Vec2) core.Vec3 {
	if texture == nil {
		return base
	}
	return base.MultiplyVec(texture.Lookup(uv))
}

func resolveScalar(base float64, texture *Texture, uv core.Vec2) float64 {
	if texture == nil {
		return base
	}
	return base * texture.Lookup(uv).Mean()
}

// DiffuseAlbedo returns the diffuse reflectance of a resolved material
func DiffuseAlbedo(m Material) core.Vec3 {
	ensureResolved(m)
	switch mat := m.(type) {
	case Lambert:
		return mat.Diffuse
	case Phong:
		return mat.Diffuse
	case LambertEmission:
		return mat.Diffuse
	default:
		panic(unknownMaterial(m))
	}
}

// Emission returns the radiance emitted toward the viewing direction
// wo. Only LambertEmission emits, and only from its front face.
func Emission(m Material, frame core.Frame, wo core.Vec3) core.Vec3 {
	ensureResolved(m)
	switch mat := m.(type) {
	case Lambert, Phong:
		return core.Vec3{}
	case LambertEmission:
		if wo.Dot(frame.Z) <= 0 {
			return core.Vec3{}
		}
		return mat.Emission
	default:
		panic(unknownMaterial(mat))
	}
}

// BrdfCos evaluates the BRDF times the incident cosine for light
// arriving along wi and leaving along wo, both unit world directions.
// Directions at or below the horizon contribute nothing.
func BrdfCos(m Material, frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	ensureResolved(m)
	cosWi := wi.Dot(frame.Z)
	cosWo := wo.Dot(frame.Z)
	if cosWi <= 0 || cosWo <= 0 {
		return core.Vec3{}
	}
	switch mat := m.(type) {
	case Lambert:
		return mat.Diffuse.Multiply(cosWi / math.Pi)
	case LambertEmission:
		return mat.Diffuse.Multiply(cosWi / math.Pi)
	case Phong:
		var d float64
		if mat.UseReflected {
			d = wo.Dot(Reflect(wi.Negate(), frame.Z))
		} else {
			d = frame.Z.Dot(wi.Add(wo).Normalize())
		}
		lobe := (mat.Exponent + 8) * math.Pow(math.Max(d, 0), mat.Exponent) / (8 * math.Pi)
		return mat.Diffuse.Multiply(1 / math.Pi).Add(mat.Specular.Multiply(lobe)).Multiply(cosWi)
	default:
		panic(unknownMaterial(mat))
	}
}

// Reflect mirrors the direction v about the axis n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// SampleReflection returns the perfect mirror sample for a glossy
// material: the reflection coefficient, the mirrored direction and a
// pdf of one. Diffuse materials and viewing directions below the
// horizon yield a no-contribution sample.
func SampleReflection(m Material, frame core.Frame, wo core.Vec3) BrdfSample {
	ensureResolved(m)
	switch mat := m.(type) {
	case Lambert, LambertEmission:
		return zeroBrdfSample()
	case Phong:
		if wo.Dot(frame.Z) <= 0 {
			return zeroBrdfSample()
		}
		return BrdfSample{
			BrdfCos: mat.Reflection,
			Wi:      Reflect(wo.Negate(), frame.Z),
			Pdf:     1,
		}
	default:
		panic(unknownMaterial(mat))
	}
}

// SampleBlurryReflection perturbs the mirror direction inside a square
// of side BlurSize spanned perpendicular to the reflection, turning
// sharp reflections glossy. The pdf is the reciprocal of the square's
// area.
func SampleBlurryReflection(m Material, frame core.Frame, wo core.Vec3, sample core.Vec2) BrdfSample {
	ensureResolved(m)
	switch mat := m.(type) {
	case Lambert, LambertEmission:
		return zeroBrdfSample()
	case Phong:
		if wo.Dot(frame.Z) <= 0 {
			return zeroBrdfSample()
		}
		wi := Reflect(wo.Negate(), frame.Z)
		u := wi.Cross(wo).Normalize()
		v := wi.Cross(u).Normalize()
		blurred := wi.
			Add(u.Multiply((0.5 - sample.X) * mat.BlurSize)).
			Add(v.Multiply((0.5 - sample.Y) * mat.BlurSize)).
			Normalize()
		return BrdfSample{
			BrdfCos: mat.Reflection,
			Wi:      blurred,
			Pdf:     1 / (mat.BlurSize * mat.BlurSize),
		}
	default:
		panic(unknownMaterial(mat))
	}
}

// SampleBrdfCos draws a cosine-weighted direction above the surface
// and evaluates the BRDF times cosine for it. Viewing directions below
// the horizon yield a no-contribution sample.
func SampleBrdfCos(m Material, frame core.Frame, wo core.Vec3, sample core.Vec2) BrdfSample {
	ensureResolved(m)
	switch m.(type) {
	case Lambert, Phong, LambertEmission:
		if wo.Dot(frame.Z) <= 0 {
			return zeroBrdfSample()
		}
		wi := core.SampleHemisphereCosine(frame, sample)
		return BrdfSample{
			BrdfCos: BrdfCos(m, frame, wi, wo),
			Wi:      wi,
			Pdf:     core.HemisphereCosinePdf(frame, wi),
		}
	default:
		panic(unknownMaterial(m))
	}
}
