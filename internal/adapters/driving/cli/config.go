package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted defaults",
	Long: `Reads and writes the facter-cli configuration file.

Recognised keys:
  facter        path to the facter executable
  external_dir  directory of external facts
  cache         enable fact memoization (true/false)
  show_legacy   include the legacy fact namespace (true/false)
  puppet        include puppet facts (true/false)
  timeout       per-invocation bound, e.g. "30s" (0 = none)
  min_interval  minimum spacing between invocations (0 = none)`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all persisted defaults",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one persisted default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set and persist one default",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}
	cmd.Printf("# %s\n", settingsStore.Path())
	for _, key := range configKeys() {
		cmd.Printf("%s = %s\n", key, configValue(settings, key))
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !validConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}
	cmd.Println(configValue(settings, key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}
	if err := setConfigValue(&settings, key, value); err != nil {
		return err
	}
	if err := settingsStore.Save(settings); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", key, configValue(settings, key))
	return nil
}

func configKeys() []string {
	return []string{"facter", "external_dir", "cache", "show_legacy", "puppet", "timeout", "min_interval"}
}

func validConfigKey(key string) bool {
	for _, k := range configKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func configValue(settings domain.Settings, key string) string {
	switch key {
	case "facter":
		return settings.FacterPath
	case "external_dir":
		return settings.ExternalDir
	case "cache":
		return strconv.FormatBool(settings.CacheEnabled)
	case "show_legacy":
		return strconv.FormatBool(settings.ShowLegacy)
	case "puppet":
		return strconv.FormatBool(settings.PuppetFacts)
	case "timeout":
		return settings.Timeout.String()
	case "min_interval":
		return settings.MinInterval.String()
	}
	return ""
}

func setConfigValue(settings *domain.Settings, key, value string) error {
	switch key {
	case "facter":
		settings.FacterPath = value
	case "external_dir":
		settings.ExternalDir = value
	case "cache", "show_legacy", "puppet":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, err)
		}
		switch key {
		case "cache":
			settings.CacheEnabled = b
		case "show_legacy":
			settings.ShowLegacy = b
		case "puppet":
			settings.PuppetFacts = b
		}
	case "timeout", "min_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s expects a duration like 30s: %w", key, err)
		}
		if key == "timeout" {
			settings.Timeout = d
		} else {
			settings.MinInterval = d
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
