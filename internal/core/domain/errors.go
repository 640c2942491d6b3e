package domain

import "errors"

// Domain errors represent fact lookup failures.
// These are distinct from infrastructure errors; the facter adapter
// wraps process-level failures in its own typed errors.
var (
	// ErrFactNotFound indicates a requested fact is absent from both
	// live and cached results. Recoverable via Get's default value.
	ErrFactNotFound = errors.New("fact not found")

	// ErrFacterNotFound indicates the facter executable could not be
	// located or launched on any attempt.
	ErrFacterNotFound = errors.New("facter executable not found")
)
