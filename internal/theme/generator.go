// Package theme lays out an X11 cursor theme directory: cursor configs,
// essential cursors, aliases, the index descriptor and helper files.
package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cursor-theme-gen/internal/catalog"
	"cursor-theme-gen/internal/cursorfile"
	"cursor-theme-gen/internal/logging"
	"cursor-theme-gen/internal/source"
)

// CursorsDirName is the theme subdirectory holding configs and bitmaps.
const CursorsDirName = "cursors"

// Generator holds the tables and settings for one theme.
type Generator struct {
	ThemeDir    string
	Name        string
	Sizes       []int
	Map         catalog.CursorMap
	Essentials  []catalog.Essential
	AliasGroups []catalog.AliasGroup
	Index       IndexMeta
	// Symlink creates alias links; nil means os.Symlink.
	Symlink     SymlinkFunc
	Log         *slog.Logger
}

// Report summarises a Generate run.
type Report struct {
	Written    []string // cursors written from the primary map
	Essentials []string // cursors synthesized from fallbacks
	Links      []LinkResult
	Warnings   int
	Failed     int

	// EssentialSources maps each synthesized cursor to its source image path.
	EssentialSources map[string]string
}

// CursorsDir returns <ThemeDir>/cursors.
func (g *Generator) CursorsDir() string {
	return filepath.Join(g.ThemeDir, CursorsDirName)
}

func (g *Generator) log() *slog.Logger {
	return logging.OrNop(g.Log)
}

func (g *Generator) writer() *cursorfile.Writer {
	return &cursorfile.Writer{Dir: g.CursorsDir(), Log: g.log()}
}

// WriteCursor writes one cursor config from a source image.
func (g *Generator) WriteCursor(spec catalog.Spec) (cursorfile.Output, error) {
	return g.writer().Write(spec.Name, spec.Source, spec.Sizes)
}

// Specs returns a cursor spec for every mapped image present in available,
// in sorted image order.
func (g *Generator) Specs(available *source.Index) []catalog.Spec {
	var specs []catalog.Spec
	for _, img := range g.Map.Images() {
		path, ok := available.Lookup(img)
		if !ok {
			continue
		}
		specs = append(specs, catalog.Spec{Name: g.Map[img], Source: path, Sizes: g.Sizes})
	}
	return specs
}

// Generate builds the theme structure. Per-cursor failures are logged and
// counted in the report; only failures to create the directory layout or
// the index are returned.
func (g *Generator) Generate(available *source.Index) (Report, error) {
	var rep Report

	if err := os.MkdirAll(g.CursorsDir(), 0o755); err != nil {
		return rep, fmt.Errorf("theme: create %s: %w", g.CursorsDir(), err)
	}

	for _, spec := range g.Specs(available) {
		out, err := g.WriteCursor(spec)
		if err != nil {
			g.log().Error("cursor config failed", "cursor", spec.Name, "err", err)
			rep.Failed++
			continue
		}
		if out.Warning != nil {
			rep.Warnings++
		}
		rep.Written = append(rep.Written, spec.Name)
	}

	created, warnings, err := g.synthesizeEssentials(available)
	if len(created) > 0 {
		rep.EssentialSources = make(map[string]string, len(created))
	}
	for _, spec := range created {
		rep.Essentials = append(rep.Essentials, spec.Name)
		rep.EssentialSources[spec.Name] = spec.Source
	}
	rep.Warnings += warnings
	if err != nil {
		g.log().Error("essential cursors incomplete", "err", err)
		rep.Failed++
	}

	links, err := g.LinkAliases()
	rep.Links = links
	if err != nil {
		g.log().Error("alias linking incomplete", "err", err)
		rep.Failed++
	}

	meta := g.Index
	if meta.Name == "" {
		meta.Name = g.Name
	}
	meta.Sizes = g.Sizes
	if err := WriteIndex(g.ThemeDir, meta); err != nil {
		return rep, err
	}

	if err := WriteManifest(filepath.Join(g.ThemeDir, ManifestName), g.ManifestEntries(rep)); err != nil {
		g.log().Warn("manifest write failed", "err", err)
	}

	return rep, nil
}
