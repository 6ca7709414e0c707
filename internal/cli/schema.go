package cli

import (
	"encoding/json"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/spf13/cobra"
)

// newSchemaCmd prints the JSON Schema of the config file.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the swatch config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(config.Schema())
		},
	}
}
