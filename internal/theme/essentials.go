package theme

import (
	"errors"
	"os"

	"cursor-theme-gen/internal/catalog"
	"cursor-theme-gen/internal/cursorfile"
	"cursor-theme-gen/internal/source"
)

// SynthesizeEssentials writes a config for every essential cursor that the
// primary map does not provide and that has no config yet. The image comes
// from the essential's fallback cursor when that image is available,
// otherwise from the first available image; with no images the cursor is
// skipped. It returns the cursors created and how many fell back to an
// unscaled image.
func (g *Generator) SynthesizeEssentials(available *source.Index) (created []string, warnings int, err error) {
	specs, warnings, err := g.synthesizeEssentials(available)
	for _, spec := range specs {
		created = append(created, spec.Name)
	}
	return created, warnings, err
}

// synthesizeEssentials does the work of SynthesizeEssentials and reports the
// image each created cursor was built from.
func (g *Generator) synthesizeEssentials(available *source.Index) (created []catalog.Spec, warnings int, err error) {
	var errs []error
	w := g.writer()

	for _, ess := range g.Essentials {
		if g.Map.Provides(ess.Name) {
			continue
		}
		if _, statErr := os.Lstat(cursorfile.PathFor(w.Dir, ess.Name)); statErr == nil {
			continue
		}

		img, ok := g.fallbackImage(ess.Fallback, available)
		if !ok {
			g.log().Debug("no image for essential cursor", "cursor", ess.Name)
			continue
		}

		out, werr := w.Write(ess.Name, img, g.Sizes)
		if werr != nil {
			errs = append(errs, werr)
			continue
		}
		if out.Warning != nil {
			warnings++
		}
		created = append(created, catalog.Spec{Name: ess.Name, Source: img, Sizes: g.Sizes})
	}

	return created, warnings, errors.Join(errs...)
}

func (g *Generator) fallbackImage(fallback string, available *source.Index) (string, bool) {
	if img, ok := g.Map.ImageFor(fallback); ok {
		if path, ok := available.Lookup(img); ok {
			return path, true
		}
	}
	return available.First()
}
