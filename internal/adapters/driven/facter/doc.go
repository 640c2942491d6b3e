// Package facter implements the driven.FactSource port by invoking
// the facter executable as a child process.
//
// Output decoding is a fixed, ordered list of strategies: JSON
// (--json), then YAML (--yaml), then the line-oriented "key => value"
// text format. A structured strategy that fails for any reason
// (launch error, non-zero exit, malformed output) is swallowed and
// the next strategy runs; only the final text strategy's failures are
// fatal to the call.
package facter
