// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"fmt"

	"github.com/reefctl/reef/internal/config"
)

// loadConfig resolves the config path (auto-detecting reef.yaml when empty)
// and loads the validated, defaults-applied configuration.
func loadConfig(configPath string) (*config.Config, error) {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	return config.LoadFile(path)
}

// resolveConfigPath returns the explicit path or searches for the default
// config file.
func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		return configPath, nil
	}

	path, err := config.FindConfigFile()
	if err != nil {
		return "", fmt.Errorf("no config file found, run 'reef init' to create one: %w", err)
	}
	return path, nil
}
