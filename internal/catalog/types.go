package catalog

import "sort"

// Spec is one cursor to generate: a name, the source image it is drawn
// from and the ordered list of pixel sizes.
type Spec struct {
	Name   string
	Source string // path to the source image
	Sizes  []int
}

// CursorMap maps source image file names (e.g. "pointer.png") to the X11
// cursor name they provide (e.g. "left_ptr").
type CursorMap map[string]string

// Images returns the mapped image names in sorted order.
func (m CursorMap) Images() []string {
	names := make([]string, 0, len(m))
	for img := range m {
		names = append(names, img)
	}
	sort.Strings(names)
	return names
}

// ImageFor returns the image name mapped to cursor, or ("", false).
// When several images map to the same cursor the first in sorted order wins.
func (m CursorMap) ImageFor(cursor string) (string, bool) {
	for _, img := range m.Images() {
		if m[img] == cursor {
			return img, true
		}
	}
	return "", false
}

// Provides reports whether some image in the map produces cursor.
func (m CursorMap) Provides(cursor string) bool {
	_, ok := m.ImageFor(cursor)
	return ok
}

// Essential is a cursor name expected by convention, with the cursor whose
// image it should borrow when the source set does not supply it.
type Essential struct {
	Name     string
	Fallback string
}

// AliasGroup lists names that share one bitmap set. Order matters: the
// first member with an existing config becomes the canonical file.
type AliasGroup []string
