// Package file persists CLI default settings as a TOML file in the
// user's facter-cli config directory. It stores configuration only;
// fact data is never written to disk.
package file
