// Package sketch reads painted map sketches, makes blank canvases for new
// ones and reports which colours a sketch actually uses.
package sketch

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"mapsketch/internal/core"
	"mapsketch/internal/export"
)

// ErrEmptyImage is returned for images without any pixels.
var ErrEmptyImage = errors.New("sketch: image has no pixels")

// Decode reads a PNG, JPEG, GIF, BMP or WEBP sketch and reports its format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode sketch: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// Load opens and decodes the sketch at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open sketch: %w", err)
	}
	defer f.Close()
	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}

// Blank returns a cols x rows canvas of scale-pixel squares filled with one
// colour, ready to be painted on.
func Blank(cols, rows, scale int, fill core.RGB) (*image.RGBA, error) {
	if cols <= 0 || rows <= 0 || scale <= 0 {
		return nil, fmt.Errorf("blank canvas %dx%d at scale %d: dimensions must be positive", cols, rows, scale)
	}
	return export.Render(core.UniformGrid(cols, rows, scale, fill)), nil
}
