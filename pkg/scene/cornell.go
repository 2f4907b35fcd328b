package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/geometry"
	"github.com/df07/go-hittable/pkg/material"
)

// DefaultSmokeDensity is the density of both smoke blocks in the Cornell
// smoke scene
const DefaultSmokeDensity = 0.01

// NewCornellSmoke creates the Cornell box with its two blocks replaced by
// constant-density smoke, one dark and one light. Each block is rotated about
// its corner before being moved into place.
func NewCornellSmoke(density float64) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	world := geometry.NewList(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Ceiling light, just below the ceiling
		geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light),
		// Ceiling
		geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	tall := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295),
	)
	short := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65),
	)

	darkSmoke, err := geometry.NewConstantMedium(tall, density, material.NewIsotropic(core.NewVec3(0, 0, 0)))
	if err != nil {
		return nil, errors.Wrap(err, "tall smoke block")
	}
	lightSmoke, err := geometry.NewConstantMedium(short, density, material.NewIsotropic(core.NewVec3(1, 1, 1)))
	if err != nil {
		return nil, errors.Wrap(err, "short smoke block")
	}
	world.Add(darkSmoke)
	world.Add(lightSmoke)

	return &Scene{
		Name:  "cornell-smoke",
		World: world,
		Camera: CameraHints{
			LookFrom: core.NewVec3(278, 278, -800), // Outside the box looking in
			LookAt:   core.NewVec3(278, 278, 0),
			VFov:     40,
		},
	}, nil
}
