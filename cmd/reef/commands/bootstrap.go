package commands

import (
	"github.com/spf13/cobra"

	"github.com/reefctl/reef/cmd/reef/handlers"
)

// Bootstrap returns the command that gates the platform deployment: it
// preflights credentials, validates the configuration, and prints the
// operator and application plan handed to the GitOps tooling.
//
// Flags:
//
//	--config, -c: Path to configuration YAML (default: auto-detect reef.yaml)
//	--json: Output the plan as JSON
func Bootstrap() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Preflight, validate, and print the deployment plan",
		Long: `Run the full pre-deployment gate:

  1. Preflight the process environment against the configured features.
  2. Validate the configuration file against the schema.
  3. Assemble and print the operator and application plan.

Any missing credential or invalid field aborts before the plan is
produced; nothing is rendered or applied to a cluster.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Bootstrap(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auto-detect reef.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output plan as JSON")

	return cmd
}
