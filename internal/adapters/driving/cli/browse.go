package cli

import (
	"github.com/spf13/cobra"

	"github.com/hostfacts/facter-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse facts interactively",
	Long: `Opens an interactive browser over the current fact set.

Controls:
  ↑/k, ↓/j - Navigate facts
  /        - Filter by name
  Esc      - Clear the filter
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	items, err := factStore.Items(cmd.Context())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		cmd.Println("No facts available.")
		return nil
	}
	return tui.Run(items)
}
