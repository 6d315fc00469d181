package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the source image types picked up by BuildIndex.
var DefaultExtensions = []string{".png"}

// Index maps source image file names to filesystem paths.
type Index struct {
	names   []string          // sorted
	entries map[string]string // file name → full path
}

// BuildIndex scans dir (not recursively) for images with one of the given
// extensions. A missing or unreadable dir yields an empty index.
func BuildIndex(dir string, exts []string) *Index {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(e)] = true
	}

	idx := &Index{entries: make(map[string]string)}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if e.IsDir() || !want[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		idx.entries[e.Name()] = filepath.Join(dir, e.Name())
		idx.names = append(idx.names, e.Name())
	}
	sort.Strings(idx.names)
	return idx
}

// Lookup returns the path of the named image, or ("", false).
func (idx *Index) Lookup(name string) (string, bool) {
	if idx == nil {
		return "", false
	}
	path, ok := idx.entries[name]
	return path, ok
}

// First returns the first image in sorted order, or ("", false) when empty.
func (idx *Index) First() (string, bool) {
	if idx == nil || len(idx.names) == 0 {
		return "", false
	}
	return idx.entries[idx.names[0]], true
}

// sortedNames returns the indexed file names in sorted order.
func (idx *Index) sortedNames() []string {
	if idx == nil {
		return nil
	}
	return append([]string(nil), idx.names...)
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.names)
}
