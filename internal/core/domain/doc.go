// Package domain defines the core entities for facter-cli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - FactSet: the complete mapping of fact names to values for one
//     facter invocation
//   - Entry: a single named fact
//   - Settings: immutable adapter configuration fixed at construction
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
