package commands

import (
	"github.com/spf13/cobra"

	"github.com/reefctl/reef/cmd/reef/handlers"
)

// Secrets returns the command that generates the secret material the
// planned operators need.
//
// Flags:
//
//	--config, -c: Path to configuration YAML (default: auto-detect reef.yaml)
//	--json: Output secrets as JSON
func Secrets() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Generate secret material for the deployment plan",
		Long: `Generate the secret values the planned operators need: random
passwords, hex keys, and bcrypt hashes.

Values are generated fresh on every run and printed to stdout;
provisioning them into the cluster is left to the secret jobs of the
GitOps repository. Treat the output as sensitive.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Secrets(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auto-detect reef.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output secrets as JSON")

	return cmd
}
