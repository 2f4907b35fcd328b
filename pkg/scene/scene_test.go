package scene

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/geometry"
	"github.com/df07/go-hittable/pkg/material"
)

var forever = core.Interval{Min: 0.001, Max: math.Inf(1)}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-smoke", "Cornell Smoke"},
		{"random_spheres", "Random Spheres"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			test.That(t, titleCase(tc.input), test.ShouldEqual, tc.expected)
		})
	}
}

func TestNames(t *testing.T) {
	test.That(t, Names(), test.ShouldResemble,
		[]string{"cornell-smoke", "earth", "random-spheres", "two-perlin-spheres", "two-spheres"})

	infos := List()
	test.That(t, infos, test.ShouldHaveLength, 5)
	test.That(t, infos[0].DisplayName, test.ShouldEqual, "Cornell Smoke")
	test.That(t, infos[1].Random, test.ShouldBeFalse)
	test.That(t, infos[2].Random, test.ShouldBeTrue)
	test.That(t, infos[3].Random, test.ShouldBeTrue)
	test.That(t, infos[4].Random, test.ShouldBeFalse)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		cfg    Config
		errors int
	}{
		{"valid", Config{Name: "two-spheres"}, 0},
		{"valid with density", Config{Name: "cornell-smoke", Density: 0.2}, 0},
		{"missing name", Config{}, 1},
		{"unknown name", Config{Name: "teapot"}, 1},
		{"negative density", Config{Name: "cornell-smoke", Density: -1}, 1},
		{"nan density", Config{Name: "cornell-smoke", Density: math.NaN()}, 1},
		{"earth with texture", Config{Name: "earth", Texture: "earthmap.jpg"}, 0},
		{"texture on wrong scene", Config{Name: "two-spheres", Texture: "earthmap.jpg"}, 1},
		{"everything wrong", Config{Name: "teapot", Density: math.Inf(1), Texture: "x.png"}, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.errors == 0 {
				test.That(t, err, test.ShouldBeNil)
				return
			}
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, multierr.Errors(err), test.ShouldHaveLength, tc.errors)
		})
	}
}

func TestBuild_RejectsInvalidConfig(t *testing.T) {
	s, err := Build(Config{Name: "teapot"})
	test.That(t, s, test.ShouldBeNil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "teapot")
}

func TestBuild_RandomSpheresIsSeeded(t *testing.T) {
	a, err := Build(Config{Name: "random-spheres", Seed: 7})
	test.That(t, err, test.ShouldBeNil)
	b, err := Build(Config{Name: "random-spheres", Seed: 7})
	test.That(t, err, test.ShouldBeNil)
	c, err := Build(Config{Name: "random-spheres", Seed: 8})
	test.That(t, err, test.ShouldBeNil)

	test.That(t, a.World.Len(), test.ShouldEqual, b.World.Len())
	test.That(t, a.World.BoundingBox(), test.ShouldResemble, b.World.BoundingBox())
	for i, obj := range a.World.Children() {
		test.That(t, obj.(*geometry.Sphere).Center, test.ShouldResemble, b.World.Children()[i].(*geometry.Sphere).Center)
	}

	// The second grid sphere is drawn after the first, so a new seed moves it
	test.That(t, a.World.Children()[1].(*geometry.Sphere).Center, test.ShouldNotResemble,
		c.World.Children()[1].(*geometry.Sphere).Center)
}

func TestRandomSpheres_Contents(t *testing.T) {
	s := NewRandomSpheres(rand.New(rand.NewPCG(42, 0)))
	n := s.World.Len()

	// ground + grid minus the clearing + three large spheres
	test.That(t, n, test.ShouldBeGreaterThan, 450)
	test.That(t, n, test.ShouldBeLessThanOrEqualTo, 1+22*22+3)
	test.That(t, s.PrimitiveCount(), test.ShouldEqual, n)

	moving := 0
	for _, obj := range s.World.Children() {
		sphere := obj.(*geometry.Sphere)
		if sphere.IsMoving() {
			moving++
			test.That(t, sphere.Material, test.ShouldHaveSameTypeAs, &material.Lambertian{})
			test.That(t, sphere.Motion.Y, test.ShouldBeBetweenOrEqual, 0.0, 0.5)
		}
	}
	// roughly 80% of the grid is diffuse
	test.That(t, float64(moving)/float64(n-4), test.ShouldBeBetween, 0.7, 0.9)

	bvh, err := s.BVH(rand.New(rand.NewPCG(1, 1)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bvh.Validate(), test.ShouldBeNil)

	// Straight down onto the large glass sphere at the origin
	var rec core.HitRecord
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	test.That(t, bvh.Hit(ray, forever, nil, &rec), test.ShouldBeTrue)
	test.That(t, rec.T, test.ShouldAlmostEqual, 8.0, 1e-9)
	test.That(t, rec.Material, test.ShouldHaveSameTypeAs, &material.Dielectric{})
}

func TestTwoSpheres(t *testing.T) {
	s, err := Build(Config{Name: "two-spheres"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.World.Len(), test.ShouldEqual, 2)

	var rec core.HitRecord
	ray := core.NewRay(core.NewVec3(20, 5, 0), core.NewVec3(-1, 0, 0))
	test.That(t, s.World.Hit(ray, forever, nil, &rec), test.ShouldBeTrue)
	test.That(t, rec.T, test.ShouldAlmostEqual, 20-math.Sqrt(75), 1e-9)

	lambertian, ok := rec.Material.(*material.Lambertian)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, lambertian.Albedo, test.ShouldHaveSameTypeAs, &material.Checker{})
}

func TestCornellSmoke(t *testing.T) {
	s, err := Build(Config{Name: "cornell-smoke"})
	test.That(t, err, test.ShouldBeNil)

	test.That(t, s.World.Len(), test.ShouldEqual, 8)
	test.That(t, s.PrimitiveCount(), test.ShouldEqual, 6+6+6)

	kinds := map[core.Kind]int{}
	for _, obj := range s.World.Children() {
		kinds[obj.Kind()]++
	}
	test.That(t, kinds[core.KindQuad], test.ShouldEqual, 6)
	test.That(t, kinds[core.KindVolume], test.ShouldEqual, 2)

	box := s.World.BoundingBox()
	test.That(t, box.X.Min, test.ShouldBeLessThanOrEqualTo, 0.0)
	test.That(t, box.X.Max, test.ShouldBeGreaterThanOrEqualTo, 555.0)
	test.That(t, box.Z.Max, test.ShouldBeGreaterThanOrEqualTo, 555.0)

	bvh, err := s.BVH(rand.New(rand.NewPCG(3, 0)))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bvh.Validate(), test.ShouldBeNil)

	// From the camera straight through the open front: the back wall or smoke
	var rec core.HitRecord
	ray := core.NewRay(s.Camera.LookFrom, s.Camera.LookAt.Sub(s.Camera.LookFrom))
	test.That(t, bvh.Hit(ray, forever, core.ConstantSampler(0.5), &rec), test.ShouldBeTrue)
	test.That(t, rec.Point.Z, test.ShouldBeBetweenOrEqual, 0.0, 555.001)
}

func TestCornellSmoke_InvalidDensity(t *testing.T) {
	_, err := NewCornellSmoke(0)
	test.That(t, errors.Is(err, geometry.ErrInvalidDensity), test.ShouldBeTrue)

	s, err := Build(Config{Name: "cornell-smoke", Density: 0.5})
	test.That(t, err, test.ShouldBeNil)
	medium := s.World.Children()[6].(*geometry.ConstantMedium)
	test.That(t, medium.Density, test.ShouldEqual, 0.5)
}

func TestEarth(t *testing.T) {
	s, err := Build(Config{Name: "earth"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.World.Len(), test.ShouldEqual, 1)

	// From the camera straight at the globe
	var rec core.HitRecord
	ray := core.NewRay(s.Camera.LookFrom, s.Camera.LookAt.Sub(s.Camera.LookFrom))
	test.That(t, s.World.Hit(ray, forever, nil, &rec), test.ShouldBeTrue)
	test.That(t, rec.Point.X, test.ShouldAlmostEqual, 2.0, 1e-9)

	lambertian := rec.Material.(*material.Lambertian)
	test.That(t, lambertian.Albedo, test.ShouldHaveSameTypeAs, &material.ImageTexture{})

	// The UV pattern encodes the hit's surface coordinates
	c := lambertian.Albedo.Value(rec.U, rec.V, rec.Point)
	test.That(t, c.X, test.ShouldAlmostEqual, rec.U, 0.01)
	test.That(t, c.Y, test.ShouldAlmostEqual, rec.V, 0.01)
}

func TestEarth_MissingTexture(t *testing.T) {
	_, err := Build(Config{Name: "earth", Texture: "does-not-exist.jpg"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "earth")
}

func TestTwoPerlinSpheres(t *testing.T) {
	a, err := Build(Config{Name: "two-perlin-spheres", Seed: 4})
	test.That(t, err, test.ShouldBeNil)
	b, err := Build(Config{Name: "two-perlin-spheres", Seed: 4})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, a.World.Len(), test.ShouldEqual, 2)

	var recA, recB core.HitRecord
	ray := core.NewRay(core.NewVec3(10, 2, 0.3), core.NewVec3(-1, 0, 0))
	test.That(t, a.World.Hit(ray, forever, nil, &recA), test.ShouldBeTrue)
	test.That(t, b.World.Hit(ray, forever, nil, &recB), test.ShouldBeTrue)

	// Same seed, same marble
	albedo := func(rec core.HitRecord) core.Vec3 {
		return rec.Material.(*material.Lambertian).Albedo.Value(rec.U, rec.V, rec.Point)
	}
	test.That(t, albedo(recA), test.ShouldResemble, albedo(recB))
	test.That(t, recA.Material.(*material.Lambertian).Albedo, test.ShouldHaveSameTypeAs, &material.NoiseTexture{})
}
