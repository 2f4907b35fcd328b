package material

import (
	"image/color"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"go.viam.com/test"

	"github.com/df07/go-hittable/pkg/core"
)

func TestImageTexture_Value(t *testing.T) {
	// 2x2: top row red, green; bottom row blue, white
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	white := core.NewVec3(1, 1, 1)
	tex := NewImageTexture(2, 2, []core.Vec3{red, green, blue, white})

	tests := []struct {
		name string
		u, v float64
		want core.Vec3
	}{
		{"bottom left", 0.1, 0.1, blue},
		{"bottom right", 0.9, 0.1, white},
		{"top left", 0.1, 0.9, red},
		{"top right", 0.9, 0.9, green},
		{"u and v of one stay in bounds", 1, 1, green},
		{"out of range is clamped", -3, 7, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.That(t, tex.Value(tt.u, tt.v, core.Vec3{}), test.ShouldResemble, tt.want)
		})
	}
}

func TestImageTexture_Empty(t *testing.T) {
	tex := NewImageTexture(0, 0, nil)
	test.That(t, tex.Value(0.5, 0.5, core.Vec3{}), test.ShouldResemble, core.NewVec3(0, 1, 1))
}

func TestLoadImageTexture(t *testing.T) {
	img := imaging.New(4, 2, color.NRGBA{R: 255, A: 255})
	img.Set(3, 0, color.NRGBA{B: 255, A: 255})
	path := filepath.Join(t.TempDir(), "tex.png")
	test.That(t, imaging.Save(img, path), test.ShouldBeNil)

	tex, err := LoadImageTexture(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tex.Width, test.ShouldEqual, 4)
	test.That(t, tex.Height, test.ShouldEqual, 2)
	test.That(t, tex.Value(0.1, 0.1, core.Vec3{}), test.ShouldResemble, core.NewVec3(1, 0, 0))
	test.That(t, tex.Value(0.99, 0.99, core.Vec3{}), test.ShouldResemble, core.NewVec3(0, 0, 1))

	_, err = LoadImageTexture(filepath.Join(t.TempDir(), "missing.png"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestUVTexture(t *testing.T) {
	tex := NewUVTexture(11, 11)
	test.That(t, tex.Value(0, 0, core.Vec3{}), test.ShouldResemble, core.NewVec3(0, 0, 0))
	test.That(t, tex.Value(1, 1, core.Vec3{}), test.ShouldResemble, core.NewVec3(1, 1, 0))
	c := tex.Value(0.5, 0.5, core.Vec3{})
	test.That(t, c.X, test.ShouldAlmostEqual, 0.5, 1e-12)
	test.That(t, c.Y, test.ShouldAlmostEqual, 0.5, 1e-12)
}

func TestPerlin(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewPCG(1, 2)))
	b := NewPerlin(rand.New(rand.NewPCG(1, 2)))
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		p := core.NewVec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		n := a.Noise(p)
		test.That(t, n, test.ShouldEqual, b.Noise(p))
		test.That(t, n, test.ShouldBeBetweenOrEqual, -1.5, 1.5)
		test.That(t, a.Turbulence(p, 7), test.ShouldBeGreaterThanOrEqualTo, 0.0)
	}

	// Gradient noise vanishes on lattice points
	test.That(t, a.Noise(core.NewVec3(3, -2, 5)), test.ShouldAlmostEqual, 0.0, 1e-12)
}

func TestNoiseTexture_Value(t *testing.T) {
	tex := NewNoiseTexture(4, rand.New(rand.NewPCG(9, 9)))
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		p := core.NewVec3(rng.Float64()*4, rng.Float64()*4, rng.Float64()*4)
		c := tex.Value(0, 0, p)
		test.That(t, c.X, test.ShouldBeBetweenOrEqual, 0.0, 1.0)
		test.That(t, c.X, test.ShouldEqual, c.Y)
		test.That(t, c.Y, test.ShouldEqual, c.Z)
	}
}
