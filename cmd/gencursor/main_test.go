package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cursor-theme-gen/internal/batch"
	"cursor-theme-gen/internal/theme"
)

func TestScriptCommand(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "theme", theme.ScriptName)
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("fullsize_pro_cursors", theme.ScriptName), "./" + filepath.Join("fullsize_pro_cursors", theme.ScriptName)},
		{abs, abs},
	}
	for _, tt := range tests {
		if got := scriptCommand(tt.path); got != tt.want {
			t.Errorf("scriptCommand(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"y", true},
		{"n\n", false},
		{"yeah\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(tt.input), &out, "go? "); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != "go? " {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestFormatResult(t *testing.T) {
	ok := formatResult(1, 3, batch.Result{Name: "left_ptr", Status: batch.OK, Bytes: 2048})
	if !strings.Contains(ok, "[1/3]") || !strings.Contains(ok, "2.0 KB") {
		t.Errorf("ok line = %q", ok)
	}
	failed := formatResult(2, 3, batch.Result{Name: "wait", Status: batch.Failed, Detail: "bad png"})
	if !strings.Contains(failed, "failed") || !strings.Contains(failed, "bad png") {
		t.Errorf("failed line = %q", failed)
	}
	if line := formatResult(3, 3, batch.Result{Name: "x", Status: batch.Timeout}); !strings.Contains(line, "timeout") {
		t.Errorf("timeout line = %q", line)
	}
}

func TestRunDeclinedStillWritesScript(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "pointer.png"), []byte("corrupt"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-src", src, "-out", out, "-name", "t", "-sizes", "16,32"},
		strings.NewReader("n\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	themeDir := filepath.Join(out, "t")
	for _, name := range []string{theme.IndexFileName, theme.ScriptName, "cursors/left_ptr.cursor"} {
		if _, err := os.Stat(filepath.Join(themeDir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
	if strings.Contains(stdout.String(), "Generating cursor files") {
		t.Error("compilation ran after a negative answer")
	}
	if !strings.Contains(stdout.String(), "Warnings: ") {
		t.Errorf("corrupt source not reported: %s", stdout.String())
	}
	if want := "Run: " + filepath.Join(themeDir, theme.ScriptName) + " --auto"; !strings.Contains(stdout.String(), want) {
		t.Errorf("stdout missing %q:\n%s", want, stdout.String())
	}
}

func TestRunMissingCompiler(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-src", src, "-out", out, "-name", "t", "-yes", "-compiler", "no-such-xcursorgen-42"},
		strings.NewReader(""), &stdout, &stderr)

	// an empty source dir still produces the index, and there is nothing to compile
	if code != 0 {
		t.Errorf("exit %d with no configs, stderr: %s", code, stderr.String())
	}

	if err := os.WriteFile(filepath.Join(src, "pointer.png"), []byte("corrupt"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout.Reset()
	stderr.Reset()
	code = run([]string{"-src", src, "-out", out, "-name", "t2", "-yes", "-compiler", "no-such-xcursorgen-42"},
		strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "xcursorgen not found") {
		t.Errorf("stderr = %q, want install guidance", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(out, "t2", theme.ScriptName)); err != nil {
		t.Errorf("HiDPI script not written after abort: %v", err)
	}
}

func TestRunBadSizes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-sizes", "16,abc"}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
}
