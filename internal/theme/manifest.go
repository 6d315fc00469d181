package theme

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"cursor-theme-gen/internal/atomicfile"
)

// ManifestName is written next to index.theme.
const ManifestName = "manifest.json"

// ManifestEntry represents one cursor name in the manifest.
type ManifestEntry struct {
	Name     string   `json:"name"`
	Source   string   `json:"source,omitempty"`
	Sizes    []int    `json:"sizes,omitempty"`
	AliasOf  string   `json:"alias_of,omitempty"`
	Strategy Strategy `json:"strategy,omitempty"`
}

// ManifestEntries lists the cursors of a Generate run, sorted by name.
func (g *Generator) ManifestEntries(rep Report) []ManifestEntry {
	var entries []ManifestEntry
	for _, name := range rep.Written {
		img, _ := g.Map.ImageFor(name)
		entries = append(entries, ManifestEntry{Name: name, Source: img, Sizes: g.Sizes})
	}
	for _, name := range rep.Essentials {
		src := ""
		if path, ok := rep.EssentialSources[name]; ok {
			src = filepath.Base(path)
		}
		entries = append(entries, ManifestEntry{Name: name, Source: src, Sizes: g.Sizes})
	}
	for _, l := range rep.Links {
		entries = append(entries, ManifestEntry{Name: l.Alias, AliasOf: l.Canonical, Strategy: l.Strategy})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// WriteManifest writes entries as indented JSON.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(path, data, 0o644)
}
