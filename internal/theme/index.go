package theme

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"cursor-theme-gen/internal/atomicfile"
)

// IndexFileName is the theme descriptor read by the cursor loader.
const IndexFileName = "index.theme"

// DefaultBaseSize is the nominal cursor size advertised by the index.
const DefaultBaseSize = 24

// IndexMeta is the content of index.theme.
type IndexMeta struct {
	Name     string
	Comment  string
	Inherits string // fallback theme
	Example  string
	Sizes    []int
}

var indexTmpl = template.Must(template.New("index").Parse(`[Icon Theme]
Name={{.Name}}
Name[en]={{.Name}} - Full Size
Comment={{.Comment}}
Comment[en]={{.Comment}} for all display types
Inherits={{.Inherits}}
Example={{.Example}}

[Icon Theme Directory]
Size={{.Size}}
Type=Fixed
Sizes={{.Sizes}}
MinSize={{.Min}}
MaxSize={{.Max}}
Threshold=2

[Desktop Entry]
Type=X-Cursor-Theme
Name={{.Name}}
Comment=Full-size cursor theme
X-KDE-FallbackTheme={{.Inherits}}
`))

// WriteIndex writes <themeDir>/index.theme.
func WriteIndex(themeDir string, meta IndexMeta) error {
	if len(meta.Sizes) == 0 {
		return fmt.Errorf("theme: index for %s: no sizes", meta.Name)
	}
	if meta.Inherits == "" {
		meta.Inherits = "core"
	}
	if meta.Example == "" {
		meta.Example = "left_ptr"
	}
	if meta.Comment == "" {
		meta.Comment = "High-quality X11 cursor theme with multiple sizes"
	}

	lo, hi := meta.Sizes[0], meta.Sizes[0]
	for _, s := range meta.Sizes {
		lo, hi = min(lo, s), max(hi, s)
	}

	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct {
		IndexMeta
		Size     int
		Sizes    string
		Min, Max int
	}{meta, BaseSize(meta.Sizes), JoinSizes(meta.Sizes), lo, hi})
	if err != nil {
		return fmt.Errorf("theme: render index: %w", err)
	}

	return atomicfile.WriteFile(filepath.Join(themeDir, IndexFileName), buf.Bytes(), 0o644)
}

// BaseSize returns DefaultBaseSize when it is in sizes, otherwise the size
// closest to it (the smaller one on a tie).
func BaseSize(sizes []int) int {
	best := 0
	for i, s := range sizes {
		if s == DefaultBaseSize {
			return s
		}
		if i == 0 || dist(s) < dist(best) || (dist(s) == dist(best) && s < best) {
			best = s
		}
	}
	return best
}

func dist(s int) int {
	if s > DefaultBaseSize {
		return s - DefaultBaseSize
	}
	return DefaultBaseSize - s
}

// JoinSizes renders sizes as "16,24,32".
func JoinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}
