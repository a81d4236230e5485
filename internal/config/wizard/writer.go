package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reefctl/reef/internal/config"
)

// nowFunc is overridable in tests for a stable header timestamp.
var nowFunc = time.Now

// WriteConfig writes the config to a YAML file with a descriptive header.
func WriteConfig(cfg *config.Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader produces the comment block at the top of the generated
// file.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# reef platform configuration
# Generated by 'reef init' on %s
#
# Edit freely; run 'reef validate --config %s' to check your changes.
# Run 'reef bootstrap' to preflight credentials and print the deployment plan.
`, nowFunc().Format("2006-01-02 15:04:05"), outputPath)
}
