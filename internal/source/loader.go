// Package source finds and decodes the images a cursor theme is built from.
package source

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Decoders are picked by file extension. The tga package registers itself
// with an empty magic string, so image.Decode sniffing would hand every
// file to it.
type decoder struct {
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)
}

var decoders = map[string]decoder{
	".png": {png.Decode, png.DecodeConfig},
	".tga": {tga.Decode, tga.DecodeConfig},
	".bmp": {bmp.Decode, bmp.DecodeConfig},
}

func decoderFor(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	d, ok := decoders[ext]
	if !ok {
		return decoder{}, fmt.Errorf("source: unknown extension %q: %s", ext, path)
	}
	return d, nil
}

// Load decodes an image file and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	d, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := d.decode(f)
	if err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("source: %s has no pixels", path)
	}
	return ToNRGBA(img), nil
}

// DecodeConfig reads only the dimensions of an image file.
func DecodeConfig(path string) (image.Config, error) {
	d, err := decoderFor(path)
	if err != nil {
		return image.Config{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := d.config(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("source: decode %s: %w", path, err)
	}
	return cfg, nil
}

// ToNRGBA converts any image to NRGBA with its origin at (0, 0).
// Sources without an alpha channel come out fully opaque.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
