package cli

import (
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List fact names",
	RunE:  runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, _ []string) error {
	keys, err := factStore.Keys(cmd.Context())
	if err != nil {
		return err
	}
	for _, k := range keys {
		cmd.Println(k)
	}
	return nil
}
