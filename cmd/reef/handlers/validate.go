package handlers

import (
	"errors"
	"fmt"

	"github.com/reefctl/reef/internal/config"
	"github.com/reefctl/reef/internal/ui"
)

// Validate loads the configuration file and checks it against the schema.
// Structured field errors are rendered for the operator; any failure makes
// the command exit non-zero.
func Validate(configPath string) error {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFileWithoutValidation(path)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			fmt.Print(ui.RenderValidation(verr))
			return fmt.Errorf("%s is invalid", path)
		}
		return err
	}

	fmt.Printf("%s is valid\n", path)
	return nil
}
