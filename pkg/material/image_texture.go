package material

import (
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/df07/go-hittable/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadImageTexture reads an image file (PNG, JPEG, GIF, BMP or TIFF) into a
// texture, honoring its EXIF orientation
func LoadImageTexture(filename string) (*ImageTexture, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "loading image texture %q", filename)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
		}
	}
	return NewImageTexture(width, height, pixels), nil
}

// NewUVTexture creates a texture showing UV coordinates as colors: U maps to
// red, V maps to green
func NewUVTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := 1 - float64(y)/float64(height-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}
	return NewImageTexture(width, height, pixels)
}

// Value samples the texture at (u, v) with nearest-neighbor filtering. u and v
// are clamped to [0, 1]; v = 0 is the bottom row.
func (t *ImageTexture) Value(u, v float64, _ core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 {
		// Debugging aid: solid cyan for a missing image
		return core.NewVec3(0, 1, 1)
	}

	u = core.Interval{Min: 0, Max: 1}.Clamp(u)
	v = 1.0 - core.Interval{Min: 0, Max: 1}.Clamp(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}
