package commands

import (
	"github.com/spf13/cobra"

	"github.com/reefctl/reef/cmd/reef/handlers"
)

// Validate returns the command for checking a platform configuration file.
//
// Flags:
//
//	--config, -c: Path to configuration YAML (default: auto-detect reef.yaml)
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the platform configuration file",
		Long: `Validate the platform configuration file against the schema.

Every violation is reported with its field path, so errors can be
fixed in one round trip. Cross-field rules (autoscaler node bounds)
are checked once the affected fields are individually valid.

Exits non-zero if the configuration is invalid.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auto-detect reef.yaml)")

	return cmd
}
