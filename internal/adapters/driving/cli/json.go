package cli

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"
)

var jsonCompact bool

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Print all facts as JSON",
	RunE:  runJSON,
}

func init() {
	jsonCmd.Flags().BoolVar(&jsonCompact, "compact", false, "single-line output")
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, _ []string) error {
	data, err := factStore.JSON(cmd.Context())
	if err != nil {
		return err
	}

	if !jsonCompact {
		var indented bytes.Buffer
		if err := json.Indent(&indented, data, "", "  "); err != nil {
			return err
		}
		data = indented.Bytes()
	}

	cmd.Println(string(data))
	return nil
}
