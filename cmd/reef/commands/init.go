package commands

import (
	"github.com/spf13/cobra"

	"github.com/reefctl/reef/cmd/reef/handlers"
)

// Init returns the command for interactively creating a platform
// configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "reef.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a platform configuration",
		Long: `Interactively create a platform configuration file.

This command guides you through configuring your GitOps platform
step by step. It will ask about:

  - Project identity (name, domain, contact email)
  - Environments and their cluster sizing (region, node size, node count)
  - Feature flags (monitoring, backup, ssl, email)
  - Applications to deploy (keycloak, mattermost, nextcloud, mailu)

Answers are validated as you type; the generated YAML passes
'reef validate' as written.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "reef.yaml", "Output file path")

	return cmd
}
