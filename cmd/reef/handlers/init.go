package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/reefctl/reef/internal/config"
	"github.com/reefctl/reef/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = wizard.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	if err := writeConfig(&cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, &cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("reef - GitOps platform on DigitalOcean Kubernetes")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("This wizard creates a platform configuration with sensible defaults.")
	fmt.Println("Answers are validated as you type.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Platform Summary")
	fmt.Println("----------------")
	fmt.Printf("  Project:      %s\n", cfg.Project.Name)
	fmt.Printf("  Domain:       %s\n", cfg.Project.Domain)
	for _, env := range cfg.Environments {
		fmt.Printf("  %-12s  %d x %s in %s\n", env.Name+":",
			env.Cluster.NodeCount, env.Cluster.NodeSize, env.Cluster.Region)
	}
	if len(cfg.Applications) > 0 {
		fmt.Printf("  Applications: %v\n", cfg.Applications)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your DigitalOcean API token:")
	fmt.Println("       export DIGITALOCEAN_TOKEN=dop_v1_<64 hex characters>")
	if cfg.Features.EmailEnabled() {
		fmt.Println("  2. Set the SMTP relay credentials (email feature is on):")
		fmt.Println("       export SMTP_USERNAME=... SMTP_PASSWORD=...")
		fmt.Println("  3. Run 'reef bootstrap' to check everything and print the plan.")
	} else {
		fmt.Println("  2. Run 'reef bootstrap' to check everything and print the plan.")
	}
	fmt.Println()
}
