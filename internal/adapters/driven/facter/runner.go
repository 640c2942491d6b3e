package facter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result is the outcome of one completed child process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner executes a child process and reports its outcome.
// The production implementation wraps os/exec; tests substitute a
// fake to script facter's behaviour.
type CommandRunner interface {
	// Run executes path with args and blocks until the process
	// exits. A non-zero exit status is reported in the Result, not as
	// an error; the error return is reserved for launch failures
	// (executable missing, context expired).
	Run(ctx context.Context, path string, args []string) (Result, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Context expiry kills the child; report it as a launch-level
		// failure rather than a synthetic exit status.
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return Result{}, err
	}

	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}

// isNotFoundErr reports whether a launch error means the executable
// could not be located on the search path.
func isNotFoundErr(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
