// Package cli implements the facter-cli command surface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hostfacts/facter-cli/internal/adapters/driven/config/file"
	"github.com/hostfacts/facter-cli/internal/adapters/driven/facter"
	"github.com/hostfacts/facter-cli/internal/core/domain"
	"github.com/hostfacts/facter-cli/internal/core/ports/driven"
	"github.com/hostfacts/facter-cli/internal/core/ports/driving"
	"github.com/hostfacts/facter-cli/internal/core/services"
	"github.com/hostfacts/facter-cli/internal/logger"
)

// version is set by Execute.
var version = "dev"

var (
	flagFacterPath  string
	flagExternalDir string
	flagNoCache     bool
	flagShowLegacy  bool
	flagPuppet      bool
	flagTimeout     time.Duration
	flagVerbose     bool
	rootJSON        bool
)

var (
	// factStore is built in setup from the effective settings.
	// Tests inject a fake before executing commands.
	factStore driving.FactStore

	// settingsStore persists CLI defaults between runs.
	settingsStore driven.SettingsStore

	// currentSettings is the effective configuration for this run:
	// persisted defaults overridden by flags.
	currentSettings domain.Settings
)

var rootCmd = &cobra.Command{
	Use:   "facter-cli [fact ...]",
	Short: "Query system facts through the facter executable",
	Long: `facter-cli exposes the output of Puppet's facter as a cached,
dictionary-like data source.

With no arguments it prints every fact as "name => value" lines.
With fact names it prints just those facts. Structured output
(--json, then --yaml) is preferred and the plain text format is the
fallback, so typed values survive whenever facter can provide them.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal to avoid an
	// initialization cycle (setup -> applyFlags -> rootCmd).
	rootCmd.PersistentPreRunE = setup

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFacterPath, "facter", "", "path to the facter executable")
	pf.StringVar(&flagExternalDir, "external-dir", "", "directory of external facts")
	pf.BoolVar(&flagNoCache, "no-cache", false, "disable fact memoization")
	pf.BoolVar(&flagShowLegacy, "show-legacy", false, "include the legacy fact namespace")
	pf.BoolVar(&flagPuppet, "puppet", false, "include puppet facts")
	pf.DurationVar(&flagTimeout, "timeout", 0, "bound each facter invocation (0 = no bound)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")

	rootCmd.Flags().BoolVar(&rootJSON, "json", false, "print all facts as JSON")
}

// setup wires the service graph: persisted defaults, flag overrides,
// the facter source, and the fact service. Tests pre-set factStore
// and settingsStore to skip the real wiring.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if settingsStore == nil {
		store, err := file.NewSettingsStore("")
		if err != nil {
			return fmt.Errorf("open settings: %w", err)
		}
		settingsStore = store
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}
	applyFlags(&settings)
	currentSettings = settings

	if factStore == nil {
		factStore = services.NewFactService(facter.New(settings), settings.CacheEnabled)
	}
	return nil
}

// applyFlags overrides persisted defaults with flags the user set.
func applyFlags(settings *domain.Settings) {
	pf := rootCmd.PersistentFlags()
	if pf.Changed("facter") {
		settings.FacterPath = flagFacterPath
	}
	if pf.Changed("external-dir") {
		settings.ExternalDir = flagExternalDir
	}
	if flagNoCache {
		settings.CacheEnabled = false
	}
	if pf.Changed("show-legacy") {
		settings.ShowLegacy = flagShowLegacy
	}
	if pf.Changed("puppet") {
		settings.PuppetFacts = flagPuppet
	}
	if pf.Changed("timeout") {
		settings.Timeout = flagTimeout
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if rootJSON {
		data, err := factStore.JSON(ctx)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(args) == 0 {
		return printAll(cmd)
	}

	// A single fact mirrors facter itself: print the bare value, or
	// nothing when the fact is unknown.
	if len(args) == 1 {
		v, err := factStore.Get(ctx, args[0], nil)
		if err != nil {
			return err
		}
		if v != nil {
			cmd.Println(domain.FormatValue(v))
		}
		return nil
	}

	for _, name := range args {
		v, err := factStore.Get(ctx, name, nil)
		if err != nil {
			return err
		}
		cmd.Printf("%s => %s\n", name, domain.FormatValue(v))
	}
	return nil
}

var factNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))

// printAll renders the full fact set as "name => value" lines,
// colouring names when stdout is a terminal.
func printAll(cmd *cobra.Command) error {
	items, err := factStore.Items(cmd.Context())
	if err != nil {
		return err
	}

	styled := isTerminal(cmd.OutOrStdout())
	for _, e := range items {
		name := e.Name
		if styled {
			name = factNameStyle.Render(name)
		}
		cmd.Printf("%s => %s\n", name, domain.FormatValue(e.Value))
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// notFound reports whether err is a missing-fact error, for commands
// that want a clean message instead of a wrapped chain.
func notFound(err error) bool {
	return errors.Is(err, domain.ErrFactNotFound)
}
