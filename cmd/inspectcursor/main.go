// cmd/inspectcursor/main.go — check xcursorgen configs before compiling
//
// Usage:
//
//	go run ./cmd/inspectcursor fullsize_pro_cursors/cursors
//	go run ./cmd/inspectcursor left_ptr.cursor hand2.cursor
//
// For every entry prints size, hotspot, placement rule and image, and flags
// missing images, size mismatches and hotspots outside the bitmap.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"cursor-theme-gen/internal/cursorfile"
	"cursor-theme-gen/internal/hotspot"
	"cursor-theme-gen/internal/source"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspectcursor <file.cursor|dir>...")
		os.Exit(2)
	}

	problems := 0
	for _, arg := range os.Args[1:] {
		paths, err := expand(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			problems++
			continue
		}
		for _, p := range paths {
			problems += inspect(os.Stdout, p)
		}
	}

	if problems > 0 {
		fmt.Printf("\n%d problem(s) found.\n", problems)
		os.Exit(1)
	}
	fmt.Println("\nAll configs OK.")
}

// expand turns a directory into its sorted *.cursor files.
func expand(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	paths, err := filepath.Glob(filepath.Join(arg, "*"+cursorfile.Ext))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// inspect prints one config and returns the number of problems in it.
func inspect(w io.Writer, path string) int {
	f, err := cursorfile.ParseFile(path)
	if err != nil {
		fmt.Fprintf(w, "ERR %v\n", err)
		return 1
	}

	link := ""
	if target, err := os.Readlink(path); err == nil {
		link = " -> " + target
	}
	fmt.Fprintf(w, "%s%s (%s) sizes=%v\n", f.Name, link, hotspot.Classify(f.Name), f.Sizes())

	if len(f.Entries) == 0 {
		fmt.Fprintln(w, "  no entries")
		return 1
	}

	problems := 0
	dir := filepath.Dir(path)
	for _, e := range f.Entries {
		status := "ok"
		if e.HotX < 0 || e.HotY < 0 || e.HotX >= e.Size || e.HotY >= e.Size {
			status = "hotspot outside bitmap"
		} else if iw, ih, err := imageSize(filepath.Join(dir, e.Image)); err != nil {
			status = err.Error()
		} else if iw != e.Size || ih != e.Size {
			status = fmt.Sprintf("image is %dx%d", iw, ih)
		}
		if status != "ok" {
			problems++
		}
		fmt.Fprintf(w, "  %4d  hot=(%d,%d)  %-28s %s\n", e.Size, e.HotX, e.HotY, e.Image, status)
	}
	return problems
}

func imageSize(path string) (int, int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, fmt.Errorf("missing image")
	}
	cfg, err := source.DecodeConfig(path)
	if err != nil {
		return 0, 0, fmt.Errorf("unreadable image")
	}
	return cfg.Width, cfg.Height, nil
}
