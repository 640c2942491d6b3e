package driven

import "github.com/hostfacts/facter-cli/internal/core/domain"

// SettingsStore persists default adapter settings between CLI runs.
// It stores configuration only, never fact data.
type SettingsStore interface {
	// Load reads persisted settings, returning defaults when nothing
	// has been stored yet.
	Load() (domain.Settings, error)

	// Save persists the given settings immediately.
	Save(domain.Settings) error

	// Path returns the backing file path, for display.
	Path() string
}
