package cursorfile

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cursor-theme-gen/internal/atomicfile"
	"cursor-theme-gen/internal/hotspot"
	"cursor-theme-gen/internal/logging"
	"cursor-theme-gen/internal/scale"
)

// Writer produces cursor configs, and their scaled images, in Dir.
type Writer struct {
	Dir string
	Log *slog.Logger
}

// Output describes one written config.
type Output struct {
	Path    string
	File    File
	// Warning is non-nil when the source could not be scaled and the
	// config references the original image.
	Warning error
}

// Write scales sourcePath for every size and writes <name>.cursor with one
// line per size. The file is replaced as a whole or not at all.
func (w *Writer) Write(name, sourcePath string, sizes []int) (Output, error) {
	log := logging.OrNop(w.Log)
	scaler := &scale.Scaler{Dir: w.Dir, Log: log}
	scaled := scaler.Scale(name, sourcePath, sizes)

	file := File{Name: name, Entries: make([]Entry, 0, len(sizes))}
	for _, size := range sizes {
		img, ok := scaled.Files[size]
		if !ok {
			img = filepath.Base(sourcePath)
		}
		x, y := hotspot.Calculate(name, size)
		file.Entries = append(file.Entries, Entry{
			Size:  size,
			HotX:  x,
			HotY:  y,
			Image: img,
			Delay: FrameDelay,
		})
	}

	path := PathFor(w.Dir, name)
	if err := atomicfile.WriteFile(path, []byte(file.String()), 0o644); err != nil {
		return Output{}, fmt.Errorf("cursorfile: write %s: %w", name, err)
	}

	log.Debug("wrote cursor config", "cursor", name, "sizes", sizes)
	return Output{Path: path, File: file, Warning: scaled.Warning}, nil
}
