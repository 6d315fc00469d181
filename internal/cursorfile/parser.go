package cursorfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads config lines from r. Blank lines and lines starting with '#'
// are skipped; every other line must have exactly five fields.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("cursorfile: line %d: got %d fields, want 5", lineNo, len(fields))
		}

		var nums [4]int
		for i, idx := range []int{0, 1, 2, 4} {
			n, err := strconv.Atoi(fields[idx])
			if err != nil {
				return nil, fmt.Errorf("cursorfile: line %d: field %d: %w", lineNo, idx+1, err)
			}
			nums[i] = n
		}

		entries = append(entries, Entry{
			Size:  nums[0],
			HotX:  nums[1],
			HotY:  nums[2],
			Image: fields[3],
			Delay: nums[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cursorfile: read: %w", err)
	}
	return entries, nil
}

// ParseFile reads a config file. The cursor name is the file stem.
func ParseFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("cursorfile: open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return File{
		Name:    strings.TrimSuffix(filepath.Base(path), Ext),
		Entries: entries,
	}, nil
}
