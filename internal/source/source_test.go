package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"link.png", "pointer.png", "notes.txt", "Busy.PNG"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	idx := BuildIndex(dir, nil)
	if idx.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (names %v)", idx.Len(), idx.sortedNames())
	}

	first, ok := idx.First()
	if !ok || filepath.Base(first) != "Busy.PNG" {
		t.Errorf("First = %q, %v, want Busy.PNG", first, ok)
	}
	if _, ok := idx.Lookup("notes.txt"); ok {
		t.Error("Lookup(notes.txt) found a non-image")
	}
	if p, ok := idx.Lookup("link.png"); !ok || p != filepath.Join(dir, "link.png") {
		t.Errorf("Lookup(link.png) = %q, %v", p, ok)
	}
}

func TestBuildIndexMissingDir(t *testing.T) {
	idx := BuildIndex(filepath.Join(t.TempDir(), "nope"), nil)
	if idx.Len() != 0 {
		t.Errorf("Len = %d, want 0", idx.Len())
	}
	if _, ok := idx.First(); ok {
		t.Error("First on empty index returned ok")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.SetGray(1, 1, color.Gray{Y: 200})
	writePNG(t, path, src)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", img.Bounds())
	}
	if c := img.NRGBAAt(1, 1); c.R != 200 || c.A != 255 {
		t.Errorf("pixel = %+v, want R=200 A=255", c)
	}
}

func TestLoadFormats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 90, G: 30, B: 10, A: 255})

	encodeTGA := func(t *testing.T, path string) {
		t.Helper()
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if err := tga.Encode(f, src); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		file  string
		write func(*testing.T, string)
	}{
		{"arrow.png", func(t *testing.T, p string) { writePNG(t, p, src) }},
		{"upper.PNG", func(t *testing.T, p string) { writePNG(t, p, src) }},
		{"arrow.tga", encodeTGA},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			tt.write(t, path)

			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Fatalf("bounds = %v, want 3x2", img.Bounds())
			}
			if c := img.NRGBAAt(2, 1); c.R != 90 || c.A != 255 {
				t.Errorf("pixel = %+v, want R=90 A=255", c)
			}

			cfg, err := DecodeConfig(path)
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if cfg.Width != 3 || cfg.Height != 2 {
				t.Errorf("config = %dx%d, want 3x2", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrow.gif")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, 2, 2)))

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown extension") {
		t.Fatalf("Load(.gif) error = %v, want unknown extension", err)
	}
	if _, err := DecodeConfig(path); err == nil {
		t.Fatal("DecodeConfig(.gif) succeeded, want error")
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(corrupt) succeeded, want error")
	}
}

func TestToNRGBAOffsetOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 10, A: 255})

	dst := ToNRGBA(src)
	if dst.Bounds().Min != (image.Point{}) {
		t.Fatalf("origin = %v, want (0,0)", dst.Bounds().Min)
	}
	if c := dst.NRGBAAt(0, 0); c.R != 10 {
		t.Errorf("pixel = %+v, want R=10", c)
	}
}
