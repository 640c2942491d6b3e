package cli

import (
	"github.com/spf13/cobra"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

var (
	lookupFresh   bool
	lookupDefault string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <fact>",
	Short: "Look up a single fact",
	Long: `Looks up one fact and prints its value.

Served from the memoized fact set when caching is enabled; --fresh
forces a direct facter query for just this fact, bypassing and not
touching the cache. An unknown fact is an error unless --default is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupFresh, "fresh", false, "bypass the cache for this lookup")
	lookupCmd.Flags().StringVar(&lookupDefault, "default", "", "value to print when the fact is absent")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cmd.Context()

	var (
		v   any
		err error
	)
	if lookupFresh {
		v, err = factStore.LookupFresh(ctx, name)
	} else {
		v, err = factStore.Lookup(ctx, name)
	}
	if err != nil {
		if notFound(err) && cmd.Flags().Changed("default") {
			cmd.Println(lookupDefault)
			return nil
		}
		return err
	}

	cmd.Println(domain.FormatValue(v))
	return nil
}
