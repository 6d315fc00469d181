// Package preview renders a contact sheet of a theme's cursors.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"path/filepath"

	"cursor-theme-gen/internal/atomicfile"
	"cursor-theme-gen/internal/cursorfile"
	"cursor-theme-gen/internal/source"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// FileName is the preview written into the theme directory.
const FileName = "preview.webp"

// Render draws the largest image of each named cursor into a grid of
// cell×cell tiles. Cursors whose config or image cannot be read are left
// out; an error is returned only when nothing could be drawn.
func Render(cursorsDir string, names []string, cell int) (*image.NRGBA, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("preview: invalid cell size %d", cell)
	}

	var tiles []*image.NRGBA
	var errs []error
	for _, name := range names {
		img, err := largestImage(cursorsDir, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tiles = append(tiles, img)
	}
	if len(tiles) == 0 {
		if len(errs) == 0 {
			return nil, errors.New("preview: no cursors")
		}
		return nil, fmt.Errorf("preview: nothing to draw: %w", errors.Join(errs...))
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(tiles)))))
	rows := (len(tiles) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	for i, t := range tiles {
		x, y := (i%cols)*cell, (i/cols)*cell
		dst := image.Rect(x, y, x+cell, y+cell)
		draw.CatmullRom.Scale(sheet, dst, t, t.Bounds(), draw.Over, nil)
	}

	return source.ToNRGBA(sheet), nil
}

func largestImage(cursorsDir, name string) (*image.NRGBA, error) {
	f, err := cursorfile.ParseFile(cursorfile.PathFor(cursorsDir, name))
	if err != nil {
		return nil, err
	}
	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("preview: %s has no entries", name)
	}
	best := f.Entries[0]
	for _, e := range f.Entries[1:] {
		if e.Size > best.Size {
			best = e
		}
	}
	return source.Load(filepath.Join(cursorsDir, best.Image))
}

// WriteWebP encodes img as lossless WebP at path.
func WriteWebP(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return fmt.Errorf("preview: WebP encode: %w", err)
	}
	return atomicfile.WriteFile(path, buf.Bytes(), 0o644)
}
