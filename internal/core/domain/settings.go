package domain

import "time"

// DefaultFacterPath is the well-known executable name, resolved via
// the process search path when no explicit path is configured.
const DefaultFacterPath = "facter"

// Settings configures a fact source. The struct is treated as
// immutable after construction: adapters copy it and never write
// back. Constructing Settings performs no I/O; the executable is not
// resolved or probed until the first invocation.
type Settings struct {
	// FacterPath is the facter executable, either a bare name looked
	// up on PATH or an absolute path.
	FacterPath string

	// ExternalDir is an optional directory of external facts, passed
	// to facter via --external-dir when non-empty.
	ExternalDir string

	// CacheEnabled controls memoization. When false the adapter
	// never retains a fact set across calls.
	CacheEnabled bool

	// ShowLegacy includes the legacy fact namespace (--show-legacy).
	ShowLegacy bool

	// PuppetFacts includes puppet-provided facts (--puppet).
	PuppetFacts bool

	// Timeout bounds each facter invocation. Zero means no bound.
	Timeout time.Duration

	// MinInterval is the minimum spacing between facter invocations.
	// Zero disables gating. Useful when uncached lookups would
	// otherwise hammer the executable.
	MinInterval time.Duration
}

// DefaultSettings returns the default adapter configuration:
// facter from PATH, caching on, no optional namespaces.
func DefaultSettings() Settings {
	return Settings{
		FacterPath:   DefaultFacterPath,
		CacheEnabled: true,
	}
}
