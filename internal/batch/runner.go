package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"
)

// DefaultWaitDelay bounds how long Run waits for the program's stderr to
// close after the program itself has exited or been killed.
const DefaultWaitDelay = 2 * time.Second

// Runner runs an external program in dir and returns its diagnostic output.
type Runner interface {
	Run(ctx context.Context, dir, program string, args ...string) (string, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct {
	// WaitDelay is passed to exec.Cmd.WaitDelay; zero means DefaultWaitDelay.
	WaitDelay time.Duration
}

// Run executes program with its working directory set to dir. It returns
// ErrCompilerNotFound when the program cannot be found, and ctx.Err()
// when the context ends first. A child process left holding stderr open
// does not block Run past WaitDelay.
func (r ExecRunner) Run(ctx context.Context, dir, program string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil || errors.Is(err, exec.ErrWaitDelay) {
		return stderr.String(), nil
	}
	var pathErr *fs.PathError
	if errors.Is(err, exec.ErrNotFound) ||
		(errors.As(err, &pathErr) && pathErr.Op != "chdir" && errors.Is(err, fs.ErrNotExist)) {
		return "", fmt.Errorf("%w (%v)", ErrCompilerNotFound, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stderr.String(), ctxErr
	}
	return stderr.String(), err
}
