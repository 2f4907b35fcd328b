package material

import (
	"math"

	"github.com/df07/go-hittable/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and world point p.
	// Solid and procedural textures may ignore either.
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidRGB creates a solid color from components
func NewSolidRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(_, _ float64, _ core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures on a 3D lattice of cubes with side
// Scale
type Checker struct {
	Scale     float64
	Even, Odd Texture
}

// NewChecker creates a checker over two textures
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker over two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks Even or Odd by the parity of the lattice cell containing p
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	inv := 1.0 / c.Scale
	x := int(math.Floor(inv * p.X))
	y := int(math.Floor(inv * p.Y))
	z := int(math.Floor(inv * p.Z))

	if ((x+y+z)%2+2)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
