package scene

import (
	"math/rand/v2"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/geometry"
	"github.com/df07/go-hittable/pkg/material"
)

// NewEarth creates a single globe of radius 2 at the origin wrapped in surface
func NewEarth(surface material.Texture) *Scene {
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(surface))

	return &Scene{
		Name:  "earth",
		World: geometry.NewList(globe),
		Camera: CameraHints{
			LookFrom: core.NewVec3(12, 0, 0),
			LookAt:   core.NewVec3(0, 0, 0),
			VFov:     20,
		},
	}
}

// NewTwoPerlinSpheres creates a marble-textured ground sphere with a second
// marble sphere resting on it. The noise lattice is drawn from rng.
func NewTwoPerlinSpheres(rng *rand.Rand) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, rng))

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		Name:  "two-perlin-spheres",
		World: world,
		Camera: CameraHints{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VFov:     20,
		},
	}
}
