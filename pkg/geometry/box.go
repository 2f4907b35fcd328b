package geometry

import (
	"github.com/df07/go-hittable/pkg/core"
)

// NewBox returns the closed box with opposite corners a and b as a list of six
// outward-facing quads
func NewBox(a, b core.Vec3, material core.Material) *List {
	min := core.MinVec(a, b)
	max := core.MaxVec(a, b)

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	return NewList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material),         // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Mul(-1), dy, material), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Mul(-1), dy, material), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material),         // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Mul(-1), material), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material),         // bottom
	)
}
