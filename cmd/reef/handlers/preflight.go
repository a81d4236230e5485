package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/reefctl/reef/internal/preflight"
	"github.com/reefctl/reef/internal/ui"
)

// checkEnv is the environment provider used by preflight handlers,
// replaceable in tests.
var checkEnv preflight.Environment = preflight.OSEnv{}

// Preflight checks the process environment against the configuration's
// feature set and reports the result. Missing credentials make the command
// exit non-zero; format warnings do not.
func Preflight(configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result := preflight.Check(checkEnv, cfg)

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return result.Err()
	}

	fmt.Print(ui.RenderPreflight(result))
	return result.Err()
}
