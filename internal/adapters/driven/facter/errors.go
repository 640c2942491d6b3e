package facter

import (
	"errors"
	"fmt"
	"strings"
)

// ExecError reports a facter invocation that could not produce
// output: the process exited non-zero on the final decoding attempt,
// could not be launched at all, or was killed by a timeout.
type ExecError struct {
	// Path is the executable that was invoked.
	Path string

	// ExitCode is the child's exit status when it ran and failed.
	ExitCode int

	// Stderr is the captured diagnostic text from the error stream.
	Stderr string

	// Err is the underlying launch or context error, when the
	// process never ran to completion.
	Err error
}

func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("facter: %s: %v", e.Path, e.Err)
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "no diagnostic output"
	}
	return fmt.Sprintf("facter: %s exited with status %d: %s", e.Path, e.ExitCode, msg)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed fallback text: a continuation line
// appeared before any "key => value" line opened a key.
type ParseError struct {
	// Line is the 1-based offending line number.
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("facter: parse error: continuation before any key at line %d", e.Line)
}

// IsExecFailure reports whether err came from a failed facter
// invocation rather than from decoding.
func IsExecFailure(err error) bool {
	var execErr *ExecError
	return errors.As(err, &execErr)
}

// IsParseFailure reports whether err came from malformed fallback text.
func IsParseFailure(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
