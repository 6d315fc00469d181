package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"cursor-theme-gen/internal/catalog"
)

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"theme_name": "neon", "sizes": [24, 48], "cursor_map": {"arrow.png": "left_ptr"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ThemeName != "neon" || !reflect.DeepEqual(cfg.Sizes, []int{24, 48}) {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.Map()["arrow.png"]; got != "left_ptr" {
		t.Errorf("Map()[arrow.png] = %q", got)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `theme_name = "neon"
sizes = [16, 32]
timeout_seconds = 5

[cursor_map]
"busy.png" = "wait"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})
	if cfg.ThemeName != "neon" || !reflect.DeepEqual(cfg.Sizes, []int{16, 32}) {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout())
	}
	if got := cfg.Map()["busy.png"]; got != "wait" {
		t.Errorf("Map()[busy.png] = %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file: want error")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("bad json: want error")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.ThemeName != "fullsize_pro_cursors" || cfg.Inherits != "core" || cfg.Compiler != "xcursorgen" {
		t.Errorf("defaults = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Sizes, catalog.StandardSizes) {
		t.Errorf("Sizes = %v", cfg.Sizes)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout())
	}
	if cfg.ThemeDir() != "fullsize_pro_cursors" {
		t.Errorf("ThemeDir = %q", cfg.ThemeDir())
	}
	if len(cfg.Map()) != len(catalog.DefaultCursorMap()) {
		t.Error("Map() is not the built-in table")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{ThemeName: "file", Sizes: []int{16}}
	cfg.Resolve(Flags{ThemeName: "flag", Extended: true, OutputDir: "/tmp/out"})

	if cfg.ThemeName != "flag" {
		t.Errorf("ThemeName = %q", cfg.ThemeName)
	}
	if !reflect.DeepEqual(cfg.Sizes, catalog.ExtendedSizes) {
		t.Errorf("Sizes = %v, want extended preset", cfg.Sizes)
	}
	if cfg.ThemeDir() != filepath.Join("/tmp/out", "flag") {
		t.Errorf("ThemeDir = %q", cfg.ThemeDir())
	}

	cfg.Resolve(Flags{Sizes: []int{8}, Extended: true})
	if !reflect.DeepEqual(cfg.Sizes, []int{8}) {
		t.Errorf("explicit sizes should beat -extended, got %v", cfg.Sizes)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{ThemeName: "t", Sizes: []int{16, 32}}, false},
		{"zero size", Config{ThemeName: "t", Sizes: []int{0}}, true},
		{"duplicate", Config{ThemeName: "t", Sizes: []int{16, 16}}, true},
		{"separator", Config{ThemeName: "a/b", Sizes: []int{16}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSizes(t *testing.T) {
	got, err := ParseSizes("16, 24,32")
	if err != nil || !reflect.DeepEqual(got, []int{16, 24, 32}) {
		t.Errorf("ParseSizes = %v, %v", got, err)
	}
	if got, err := ParseSizes(""); err != nil || got != nil {
		t.Errorf("ParseSizes(\"\") = %v, %v", got, err)
	}
	if _, err := ParseSizes("16,big"); err == nil {
		t.Error("want error for non-numeric size")
	}
}
