// Package scale writes resized copies of a cursor source image, one PNG
// per requested cursor size.
package scale

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"cursor-theme-gen/internal/atomicfile"
	"cursor-theme-gen/internal/logging"
	"cursor-theme-gen/internal/source"

	"github.com/nfnt/resize"
)

// Scaler writes scaled images into Dir.
type Scaler struct {
	Dir string
	Log *slog.Logger
}

// Result maps each requested size to the image file name a cursor config
// should reference.
type Result struct {
	Files   map[int]string
	// Warning is set when scaling failed and Files fall back to the
	// original source file name for every size.
	Warning error
}

// FileName returns the scaled image name for a cursor at size.
func FileName(cursor string, size int) string {
	return fmt.Sprintf("%s_%dx%d.png", cursor, size, size)
}

// Scale resizes sourcePath to a square of every size. It never fails: on
// any error the written files are removed and the result references the
// original image instead.
func (s *Scaler) Scale(cursor, sourcePath string, sizes []int) Result {
	files, err := s.scale(cursor, sourcePath, sizes)
	if err == nil {
		return Result{Files: files}
	}

	logging.OrNop(s.Log).Warn("could not scale image, using original",
		"cursor", cursor, "source", sourcePath, "err", err)

	fallback := make(map[int]string, len(sizes))
	for _, size := range sizes {
		fallback[size] = filepath.Base(sourcePath)
	}
	return Result{Files: fallback, Warning: err}
}

func (s *Scaler) scale(cursor, sourcePath string, sizes []int) (map[int]string, error) {
	img, err := source.Load(sourcePath)
	if err != nil {
		return nil, err
	}

	files := make(map[int]string, len(sizes))
	var written []string
	cleanup := func() {
		for _, p := range written {
			os.Remove(p)
		}
	}

	for _, size := range sizes {
		if size <= 0 {
			cleanup()
			return nil, fmt.Errorf("scale: invalid size %d", size)
		}
		data, err := encode(Resize(img, size))
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("scale: encode %s at %d: %w", cursor, size, err)
		}

		name := FileName(cursor, size)
		path := filepath.Join(s.Dir, name)
		if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
			cleanup()
			return nil, fmt.Errorf("scale: %w", err)
		}
		written = append(written, path)
		files[size] = name
	}

	return files, nil
}

// Resize returns img scaled to size×size with Lanczos3 resampling.
func Resize(img image.Image, size int) *image.NRGBA {
	return source.ToNRGBA(resize.Resize(uint(size), uint(size), img, resize.Lanczos3))
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
