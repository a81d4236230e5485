package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reefctl/reef/internal/platform"
	"github.com/reefctl/reef/internal/secrets"
)

// generateSecrets is replaceable in tests to avoid nondeterministic values.
var generateSecrets = secrets.Generate

// secretEntry is a single generated value for display.
type secretEntry struct {
	Secret string `json:"secret"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// Secrets generates the secret material the planned operators need and
// prints it. Values are fresh on every invocation; provisioning them into
// the cluster is left to the GitOps secret jobs.
func Secrets(configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	plan := platform.BuildPlan(cfg)
	material, err := generateSecrets(plan.Secrets())
	if err != nil {
		return fmt.Errorf("failed to generate secrets: %w", err)
	}

	var entries []secretEntry
	for _, m := range material {
		for _, key := range m.Spec.Keys {
			entries = append(entries, secretEntry{
				Secret: m.Spec.Namespace + "/" + m.Spec.Name,
				Key:    key.Name,
				Value:  m.Values[key.Name],
			})
		}
	}

	if jsonOutput {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	fmt.Println("  Generated secret material (sensitive, not persisted)")
	fmt.Println("  " + strings.Repeat("─", 45))
	for _, e := range entries {
		fmt.Printf("  %-35s %-15s %s\n", e.Secret, e.Key, e.Value)
	}
	fmt.Println()

	return nil
}
