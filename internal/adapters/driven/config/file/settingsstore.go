package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/hostfacts/facter-cli/internal/core/domain"
	"github.com/hostfacts/facter-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML. Settings are stored in config.toml under the facter-cli
// config directory.
type SettingsStore struct {
	filePath string
}

// fileSettings is the on-disk shape. Durations are stored as strings
// ("30s") and the cache flag is a pointer so an absent key keeps its
// default of true.
type fileSettings struct {
	Facter      string `toml:"facter,omitempty"`
	ExternalDir string `toml:"external_dir,omitempty"`
	Cache       *bool  `toml:"cache,omitempty"`
	ShowLegacy  bool   `toml:"show_legacy,omitempty"`
	Puppet      bool   `toml:"puppet,omitempty"`
	Timeout     string `toml:"timeout,omitempty"`
	MinInterval string `toml:"min_interval,omitempty"`
}

// NewSettingsStore creates a TOML-based settings store.
// If configDir is empty, defaults to ~/.facter-cli.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".facter-cli")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads persisted settings. A missing file yields the defaults.
func (s *SettingsStore) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return settings, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	if fs.Facter != "" {
		settings.FacterPath = fs.Facter
	}
	settings.ExternalDir = fs.ExternalDir
	if fs.Cache != nil {
		settings.CacheEnabled = *fs.Cache
	}
	settings.ShowLegacy = fs.ShowLegacy
	settings.PuppetFacts = fs.Puppet

	if fs.Timeout != "" {
		d, err := time.ParseDuration(fs.Timeout)
		if err != nil {
			return settings, fmt.Errorf("parse %s: timeout: %w", s.filePath, err)
		}
		settings.Timeout = d
	}
	if fs.MinInterval != "" {
		d, err := time.ParseDuration(fs.MinInterval)
		if err != nil {
			return settings, fmt.Errorf("parse %s: min_interval: %w", s.filePath, err)
		}
		settings.MinInterval = d
	}

	return settings, nil
}

// Save persists the given settings immediately.
func (s *SettingsStore) Save(settings domain.Settings) error {
	cache := settings.CacheEnabled
	fs := fileSettings{
		Facter:      settings.FacterPath,
		ExternalDir: settings.ExternalDir,
		Cache:       &cache,
		ShowLegacy:  settings.ShowLegacy,
		Puppet:      settings.PuppetFacts,
	}
	if settings.Timeout > 0 {
		fs.Timeout = settings.Timeout.String()
	}
	if settings.MinInterval > 0 {
		fs.MinInterval = settings.MinInterval.String()
	}

	data, err := toml.Marshal(fs)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
