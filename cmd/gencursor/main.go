// cmd/gencursor/main.go — build a full-size X11 cursor theme from PNGs
//
// Usage:
//
//	go run ./cmd/gencursor
//	go run ./cmd/gencursor -src art/ -name my_cursors -extended -yes
//
// Writes <name>/cursors/*.cursor plus scaled PNGs, links alias names,
// writes index.theme, optionally runs xcursorgen over the configs and
// finally writes the configure_hidpi.sh helper.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cursor-theme-gen/internal/batch"
	"cursor-theme-gen/internal/catalog"
	"cursor-theme-gen/internal/config"
	"cursor-theme-gen/internal/logging"
	"cursor-theme-gen/internal/preview"
	"cursor-theme-gen/internal/source"
	"cursor-theme-gen/internal/theme"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gencursor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to config file (.json or .toml)")
	srcDir := fs.String("src", "", "Directory with source PNG images (default: .)")
	outDir := fs.String("out", "", "Directory the theme is created in (default: .)")
	name := fs.String("name", "", "Theme name (default: fullsize_pro_cursors)")
	sizesFlag := fs.String("sizes", "", "Comma-separated cursor sizes (default: 16,24,32,48,64,96,128)")
	extended := fs.Bool("extended", false, "Use the extended high-DPI size list")
	compiler := fs.String("compiler", "", "Cursor compiler binary (default: xcursorgen)")
	yes := fs.Bool("yes", false, "Compile without asking")
	noCompile := fs.Bool("no-compile", false, "Skip compilation without asking")
	withPreview := fs.Bool("preview", false, "Write preview.webp with all cursors")
	verbose := fs.Bool("v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logging.New(stderr, *verbose)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	sizes, err := config.ParseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SourceDir: *srcDir,
		OutputDir: *outDir,
		ThemeName: *name,
		Sizes:     sizes,
		Extended:  *extended,
		Compiler:  *compiler,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "FULL-SIZE X11 Cursor Theme Generator")
	fmt.Fprintln(stdout, strings.Repeat("=", 60))

	available := source.BuildIndex(cfg.SourceDir, cfg.Extensions)
	fmt.Fprintf(stdout, "Creating cursor theme: %s\n", cfg.ThemeName)
	fmt.Fprintf(stdout, "Source images: %d in %s\n", available.Len(), cfg.SourceDir)
	fmt.Fprintf(stdout, "Supported sizes: %s\n", theme.JoinSizes(cfg.Sizes))

	gen := &theme.Generator{
		ThemeDir:    cfg.ThemeDir(),
		Name:        cfg.ThemeName,
		Sizes:       cfg.Sizes,
		Map:         cfg.Map(),
		Essentials:  catalog.Essentials,
		AliasGroups: catalog.AliasGroups,
		Index:       theme.IndexMeta{Name: cfg.ThemeName, Comment: cfg.Comment, Inherits: cfg.Inherits},
		Log:         log,
	}

	rep, err := gen.Generate(available)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	printReport(stdout, rep)
	fmt.Fprintf(stdout, "\nTheme structure created in: %s\n", cfg.ThemeDir())

	exit := 0
	compile := *yes
	if !*yes && !*noCompile {
		compile = confirm(stdin, stdout, "\nGenerate full-size cursor files? This may take a while (y/n): ")
	}
	if compile {
		if err := compileAll(stdout, gen.CursorsDir(), cfg, log); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			exit = 1
		}
	}

	if *withPreview {
		names := append(append([]string(nil), rep.Written...), rep.Essentials...)
		img, err := preview.Render(gen.CursorsDir(), names, cfg.PreviewCell)
		if err == nil {
			err = preview.WriteWebP(filepath.Join(cfg.ThemeDir(), preview.FileName), img)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Warning: preview: %v\n", err)
		} else {
			fmt.Fprintf(stdout, "Preview: %s\n", filepath.Join(cfg.ThemeDir(), preview.FileName))
		}
	}

	// The helper is written whether or not compilation ran.
	script := theme.ScriptMeta{Theme: cfg.ThemeName, Sizes: cfg.Sizes, BaseSize: cfg.BaseSize}
	if err := theme.WriteHiDPIScript(cfg.ThemeDir(), script); err != nil {
		fmt.Fprintf(stderr, "Warning: HiDPI script: %v\n", err)
	} else {
		fmt.Fprintf(stdout, "High-DPI script created: %s\n", filepath.Join(cfg.ThemeDir(), theme.ScriptName))
	}

	fmt.Fprintln(stdout, "\nTheme creation complete!")
	fmt.Fprintf(stdout, "Location: %s\n", cfg.ThemeDir())
	fmt.Fprintf(stdout, "Sizes: %s pixels\n", theme.JoinSizes(cfg.Sizes))
	fmt.Fprintf(stdout, "Run: %s --auto\n", scriptCommand(filepath.Join(cfg.ThemeDir(), theme.ScriptName)))
	return exit
}

// scriptCommand makes a relative script path runnable from the shell.
func scriptCommand(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return "./" + path
}

func printReport(w io.Writer, rep theme.Report) {
	fmt.Fprintf(w, "Cursors: %d from images, %d essential, %d aliases\n",
		len(rep.Written), len(rep.Essentials), len(rep.Links))
	if rep.Warnings > 0 {
		fmt.Fprintf(w, "Warnings: %d cursor(s) use unscaled source images\n", rep.Warnings)
	}
	if rep.Failed > 0 {
		fmt.Fprintf(w, "Failures: %d (see log)\n", rep.Failed)
	}
}

// confirm asks question and reports whether the answer was y or yes.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func compileAll(w io.Writer, cursorsDir string, cfg config.Config, log *slog.Logger) error {
	p := message.NewPrinter(language.English)
	fmt.Fprintln(w, "\nGenerating cursor files...")

	d := &batch.Driver{
		Compiler: cfg.Compiler,
		Timeout:  cfg.Timeout(),
		Log:      log,
		Progress: func(i, n int, r batch.Result) {
			fmt.Fprintln(w, formatResult(i, n, r))
		},
	}

	start := time.Now()
	sum, err := d.Run(context.Background(), cursorsDir)
	if errors.Is(err, batch.ErrCompilerNotFound) {
		return err
	}
	if err != nil {
		log.Error("compile", "err", err)
	}

	fmt.Fprintf(w, "\nGeneration complete in %.1fs: %d ok, %d failed\n",
		time.Since(start).Seconds(), sum.Success, sum.Failed)
	if sum.Success > 0 {
		p.Fprintf(w, "Total theme size: %.1f MB (%d bytes)\n", float64(sum.TotalBytes)/(1024*1024), sum.TotalBytes)
	}
	return nil
}

func formatResult(i, n int, r batch.Result) string {
	progress := fmt.Sprintf("[%d/%d]", i, n)
	switch r.Status {
	case batch.OK:
		return fmt.Sprintf("  %s ok      %-20s (%5.1f KB)", progress, r.Name, float64(r.Bytes)/1024)
	case batch.Timeout:
		return fmt.Sprintf("  %s timeout %-20s", progress, r.Name)
	}
	return fmt.Sprintf("  %s failed  %-20s - %s", progress, r.Name, r.Detail)
}
