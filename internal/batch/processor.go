// Package batch drives the external cursor compiler over a cursors
// directory.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cursor-theme-gen/internal/cursorfile"
	"cursor-theme-gen/internal/logging"
)

// DefaultCompiler is the xcursorgen binary looked up on PATH.
const DefaultCompiler = "xcursorgen"

// DefaultTimeout bounds a single compiler invocation.
const DefaultTimeout = 30 * time.Second

// ErrCompilerNotFound aborts a run when the compiler binary is missing.
var ErrCompilerNotFound = errors.New(`xcursorgen not found. Please install:
   Ubuntu/Debian: sudo apt-get install x11-apps
   Fedora: sudo dnf install xorg-x11-apps
   Arch: sudo pacman -S xorg-xcursorgen`)

// Status is the outcome of compiling one cursor.
type Status int

const (
	OK Status = iota
	Failed
	Timeout
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Failed:
		return "failed"
	case Timeout:
		return "timeout"
	}
	return "unknown"
}

// Result holds the outcome of compiling one config.
type Result struct {
	Name   string
	Status Status
	Bytes  int64  // size of the compiled cursor, when OK
	Detail string // compiler diagnostics, when not OK
}

// Summary aggregates a run.
type Summary struct {
	Results    []Result
	Success    int
	Failed     int
	TotalBytes int64 // all non-config files in the cursors dir
}

// Driver compiles every cursor config in a directory, one at a time.
type Driver struct {
	Runner   Runner
	Compiler string
	Timeout  time.Duration
	// Progress, if set, is called after each config with its 1-based
	// position and the total count.
	Progress func(i, n int, r Result)
	Log      *slog.Logger
}

// Configs lists the *.cursor files in dir that are not symlinks, sorted.
func Configs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type()&os.ModeSymlink != 0 || e.IsDir() || filepath.Ext(e.Name()) != cursorfile.Ext {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Run compiles each config in cursorsDir. Per-file failures and timeouts
// are counted and the run continues; a missing compiler stops the run and
// returns ErrCompilerNotFound along with the results so far.
func (d *Driver) Run(ctx context.Context, cursorsDir string) (Summary, error) {
	log := logging.OrNop(d.Log)
	var sum Summary

	configs, err := Configs(cursorsDir)
	if err != nil {
		return sum, err
	}

	for i, cfg := range configs {
		r, err := d.compile(ctx, cursorsDir, cfg)
		if errors.Is(err, ErrCompilerNotFound) {
			log.Error("compiler missing, aborting", "compiler", d.compiler())
			return sum, err
		}

		sum.Results = append(sum.Results, r)
		if r.Status == OK {
			sum.Success++
		} else {
			sum.Failed++
			log.Warn("cursor compile failed", "cursor", r.Name, "status", r.Status, "detail", r.Detail)
		}
		if d.Progress != nil {
			d.Progress(i+1, len(configs), r)
		}
	}

	sum.TotalBytes, err = ArtifactBytes(cursorsDir)
	return sum, err
}

func (d *Driver) compile(ctx context.Context, dir, config string) (Result, error) {
	name := strings.TrimSuffix(config, cursorfile.Ext)
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runner := d.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runner.Run(cctx, dir, d.compiler(), config, name)
	switch {
	case errors.Is(err, ErrCompilerNotFound):
		return Result{Name: name}, err
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(cctx.Err(), context.DeadlineExceeded):
		return Result{Name: name, Status: Timeout, Detail: "timeout"}, nil
	case err != nil:
		detail := strings.TrimSpace(out)
		if detail == "" {
			detail = err.Error()
		}
		return Result{Name: name, Status: Failed, Detail: detail}, nil
	}

	info, statErr := os.Stat(filepath.Join(dir, name))
	if statErr != nil {
		return Result{Name: name, Status: Failed, Detail: "no output produced"}, nil
	}
	return Result{Name: name, Status: OK, Bytes: info.Size()}, nil
}

func (d *Driver) compiler() string {
	if d.Compiler == "" {
		return DefaultCompiler
	}
	return d.Compiler
}

// ArtifactBytes sums the sizes of the regular files in dir that are not
// cursor configs: compiled cursors and scaled images.
func ArtifactBytes(dir string) (int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("batch: read %s: %w", dir, err)
	}
	var total int64
	for _, e := range entries {
		if filepath.Ext(e.Name()) == cursorfile.Ext {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
