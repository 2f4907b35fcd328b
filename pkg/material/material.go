// Package material holds the surface descriptions scenes attach to geometry.
// Materials are opaque to intersection: a hit only carries them back to the
// caller. Scattering is the renderer's business.
package material

import (
	"github.com/df07/go-hittable/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Dielectric represents a transparent material like glass or water
type Dielectric struct {
	RefractionIndex float64 // Relative to the enclosing medium
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Isotropic scatters uniformly in all directions. Used as the phase function
// of participating media.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// DiffuseLight emits light and does not scatter
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a new emissive material with solid color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emit)}
}

// Emitted returns emitted radiance at the given surface point
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, p)
}

// Name returns a short human-readable name for m, used in diagnostics
func Name(m core.Material) string {
	switch m.(type) {
	case nil:
		return "none"
	case *Lambertian:
		return "lambertian"
	case *Metal:
		return "metal"
	case *Dielectric:
		return "dielectric"
	case *Isotropic:
		return "isotropic"
	case *DiffuseLight:
		return "diffuse_light"
	default:
		return "other"
	}
}
