// Package cursorfile reads and writes xcursorgen configuration files.
//
// Each non-comment line describes one image of the cursor:
//
//	<size> <xhot> <yhot> <filename> <ms-delay>
package cursorfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Ext is the extension of cursor config files.
const Ext = ".cursor"

// FrameDelay is the per-frame delay in milliseconds. Cursors are single
// frame, so the value is fixed.
const FrameDelay = 100

// Entry is one size of a cursor.
type Entry struct {
	Size  int
	HotX  int
	HotY  int
	Image string
	Delay int
}

// File is the full config of one cursor, entries in requested size order.
type File struct {
	Name    string
	Entries []Entry
}

// Sizes returns the entry sizes in file order.
func (f File) Sizes() []int {
	sizes := make([]int, len(f.Entries))
	for i, e := range f.Entries {
		sizes[i] = e.Size
	}
	return sizes
}

// String renders the config text, header comment first.
func (f File) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s cursor - Optimized multi-size\n", f.Name)
	for _, e := range f.Entries {
		fmt.Fprintf(&b, "%d %d %d %s %d\n", e.Size, e.HotX, e.HotY, e.Image, e.Delay)
	}
	return b.String()
}

// PathFor returns the config path of cursor name inside dir.
func PathFor(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}
