package commands

import (
	"github.com/spf13/cobra"

	"github.com/reefctl/reef/cmd/reef/handlers"
)

// Preflight returns the command for checking the ambient credentials against
// the configuration's feature set.
//
// Flags:
//
//	--config, -c: Path to configuration YAML (default: auto-detect reef.yaml)
//	--json: Output the structured result as JSON
//
// Environment variables:
//
//	DIGITALOCEAN_TOKEN           always required
//	SMTP_USERNAME, SMTP_PASSWORD required when features.email is enabled
func Preflight() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Check that the environment can support a deployment",
		Long: `Check the process environment for the credentials the configured
feature set requires.

A variable is missing when it is unset or blank; missing variables
make the check fail. Present variables are also checked against their
expected format (e.g. the DigitalOcean token prefix); mismatches are
reported as warnings and do not block deployment.

The check is read-only and never modifies the environment.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Preflight(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auto-detect reef.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}
