package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cursor-theme-gen/internal/catalog"

	"github.com/BurntSushi/toml"
)

// Config holds all configurable paths and generation settings.
type Config struct {
	// Paths
	SourceDir string `json:"source_dir" toml:"source_dir"`
	OutputDir string `json:"output_dir" toml:"output_dir"`

	// Theme
	ThemeName   string   `json:"theme_name" toml:"theme_name"`
	Comment     string   `json:"comment" toml:"comment"`
	Inherits    string   `json:"inherits" toml:"inherits"`
	Sizes       []int    `json:"sizes" toml:"sizes"`
	Extensions  []string `json:"source_extensions" toml:"source_extensions"`
	BaseSize    int      `json:"base_size" toml:"base_size"`
	PreviewCell int      `json:"preview_cell" toml:"preview_cell"`

	// CursorMap replaces the built-in image → cursor table when set.
	CursorMap map[string]string `json:"cursor_map" toml:"cursor_map"`

	// Compiler
	Compiler       string `json:"compiler" toml:"compiler"`
	TimeoutSeconds int    `json:"timeout_seconds" toml:"timeout_seconds"`
}

// Load reads a JSON or TOML (by .toml extension) config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SourceDir string
	OutputDir string
	ThemeName string
	Sizes     []int
	Extended  bool
	Compiler  string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SourceDir != "" {
		c.SourceDir = flags.SourceDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.ThemeName != "" {
		c.ThemeName = flags.ThemeName
	}
	if len(flags.Sizes) > 0 {
		c.Sizes = flags.Sizes
	} else if flags.Extended {
		c.Sizes = append([]int(nil), catalog.ExtendedSizes...)
	}
	if flags.Compiler != "" {
		c.Compiler = flags.Compiler
	}

	if c.SourceDir == "" {
		c.SourceDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.ThemeName == "" {
		c.ThemeName = "fullsize_pro_cursors"
	}
	if c.Inherits == "" {
		c.Inherits = "core"
	}
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), catalog.StandardSizes...)
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".png"}
	}
	if c.BaseSize <= 0 {
		c.BaseSize = 24
	}
	if c.PreviewCell <= 0 {
		c.PreviewCell = 64
	}
	if c.Compiler == "" {
		c.Compiler = "xcursorgen"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

// ThemeDir returns <OutputDir>/<ThemeName>.
func (c *Config) ThemeDir() string {
	return filepath.Join(c.OutputDir, c.ThemeName)
}

// Timeout returns the per-cursor compiler timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Map returns the configured cursor map, or the built-in one.
func (c *Config) Map() catalog.CursorMap {
	if len(c.CursorMap) > 0 {
		return catalog.CursorMap(c.CursorMap)
	}
	return catalog.DefaultCursorMap()
}

// Validate reports settings that would produce a broken theme.
func (c *Config) Validate() error {
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("config: invalid size %d", s)
		}
		if seen[s] {
			return fmt.Errorf("config: size %d listed twice", s)
		}
		seen[s] = true
	}
	if strings.ContainsAny(c.ThemeName, `/\`) {
		return fmt.Errorf("config: theme name %q must not contain path separators", c.ThemeName)
	}
	return nil
}

// ParseSizes parses a comma-separated size list such as "16,24,32".
func ParseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("config: size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
