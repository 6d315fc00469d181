package theme

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"cursor-theme-gen/internal/atomicfile"
)

// ScriptName is the HiDPI helper written next to index.theme.
const ScriptName = "configure_hidpi.sh"

// ScriptMeta parameterises the HiDPI helper.
type ScriptMeta struct {
	Theme    string
	Sizes    []int
	BaseSize int
}

var scriptTmpl = template.Must(template.New("hidpi").Parse(`#!/bin/bash
# High-DPI Cursor Configuration Script for {{.Theme}}

echo "Configuring high-DPI cursor settings..."

# Set cursor size based on display scale
set_cursor_size() {
    local scale=$1
    local base_size={{.BaseSize}}
    local new_size=$(echo "$base_size * $scale" | bc | cut -d. -f1)

    echo "Setting cursor size to $new_size (scale: $scale)"

    # X11 settings
    xsetroot -cursor_name left_ptr
    if command -v gsettings >/dev/null 2>&1; then
        gsettings set org.gnome.desktop.interface cursor-size $new_size
    fi

    # KDE settings
    if command -v kwriteconfig6 >/dev/null 2>&1; then
        kwriteconfig6 --file kcminputrc --group Mouse --key cursorSize $new_size
    fi
}

# Detect display scale
detect_scale() {
    if command -v xdpyinfo >/dev/null 2>&1; then
        local dpi=$(xdpyinfo | grep -oP 'resolution:\s+\K[0-9]+' | head -1)
        if [ -n "$dpi" ]; then
            local scale=$(echo "scale=1; $dpi / 96" | bc)
            echo $scale
        else
            echo "1.0"
        fi
    else
        echo "1.0"
    fi
}

# Main execution
SCALE=$(detect_scale)
echo "Detected display scale: $SCALE"

if [ "$1" = "--auto" ]; then
    set_cursor_size $SCALE
elif [ -n "$1" ]; then
    set_cursor_size $1
else
    echo "Usage: $0 [--auto|SIZE]"
    echo "  --auto  : Set cursor size based on detected DPI"
    echo "  SIZE    : Set specific scale factor (e.g., 2.0 for 200%)"
    echo ""
    echo "Current theme supports sizes: {{.SizeList}}"
fi

echo "Cursor theme: {{.Theme}}"
echo "To manually set: export XCURSOR_THEME={{.Theme}}"
`))

// WriteHiDPIScript writes the executable helper <themeDir>/configure_hidpi.sh.
func WriteHiDPIScript(themeDir string, meta ScriptMeta) error {
	if meta.BaseSize <= 0 {
		meta.BaseSize = DefaultBaseSize
	}
	sizes := make([]string, len(meta.Sizes))
	for i, s := range meta.Sizes {
		sizes[i] = fmt.Sprint(s)
	}

	var buf bytes.Buffer
	err := scriptTmpl.Execute(&buf, struct {
		ScriptMeta
		SizeList string
	}{meta, strings.Join(sizes, ", ")})
	if err != nil {
		return fmt.Errorf("theme: render %s: %w", ScriptName, err)
	}

	return atomicfile.WriteFile(filepath.Join(themeDir, ScriptName), buf.Bytes(), 0o755)
}
