package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/reefctl/reef/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Project identity
	ProjectName string
	Domain      string
	Email       string
	Description string

	// Environments, in selection order
	Environments []EnvResult

	// Selected feature keys (see FeatureOptions)
	Features []string

	// Selected applications
	Apps []config.AppName
}

// EnvResult holds the answers for one environment.
type EnvResult struct {
	Name             config.EnvironmentName
	Region           config.Region
	NodeSize         config.NodeSize
	NodeCount        int
	MinNodes         int
	MaxNodes         int
	HighAvailability bool
}

// RunWizard runs the interactive configuration wizard. The context is used
// for cancellation support (e.g. Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	names, err := runEnvironmentSelection(ctx)
	if err != nil {
		return nil, fmt.Errorf("environments: %w", err)
	}

	for _, name := range names {
		env, err := runEnvironmentGroup(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("environment %s: %w", name, err)
		}
		result.Environments = append(result.Environments, env)
	}

	if err := runFeaturesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	if err := runAppsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("applications: %w", err)
	}

	return result, nil
}

// runProjectGroup prompts for project identity.
func runProjectGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Description("1-50 lowercase alphanumeric characters or hyphens").
				Placeholder("my-platform").
				Value(&result.ProjectName).
				Validate(fieldValidator("project.name", errProjectNameRequired, func(s string) config.Config {
					return config.Config{Project: config.Project{Name: s}}
				})),
			huh.NewInput().
				Title("Base Domain").
				Description("Applications are served under subdomains of this domain").
				Placeholder("example.com").
				Value(&result.Domain).
				Validate(fieldValidator("project.domain", errDomainRequired, func(s string) config.Config {
					return config.Config{Project: config.Project{Domain: s}}
				})),
			huh.NewInput().
				Title("Contact Email").
				Description("Used for Let's Encrypt notifications and platform alerts").
				Placeholder("ops@example.com").
				Value(&result.Email).
				Validate(fieldValidator("project.email", errEmailRequired, func(s string) config.Config {
					return config.Config{Project: config.Project{Email: s}}
				})),
			huh.NewInput().
				Title("Description (Optional)").
				Value(&result.Description),
		).Title("Project"),
	).RunWithContext(ctx)
}

// runEnvironmentSelection prompts for which environments to configure.
func runEnvironmentSelection(ctx context.Context) ([]config.EnvironmentName, error) {
	var names []config.EnvironmentName

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[config.EnvironmentName]().
				Title("Environments").
				Description("Each environment gets its own DOKS cluster").
				Options(EnvironmentOptions()...).
				Validate(func(selected []config.EnvironmentName) error {
					if len(selected) == 0 {
						return errEnvironmentsRequired
					}
					return nil
				}).
				Value(&names),
		).Title("Environments"),
	).RunWithContext(ctx)

	return names, err
}

// runEnvironmentGroup prompts for the cluster sizing of one environment.
func runEnvironmentGroup(ctx context.Context, name config.EnvironmentName) (EnvResult, error) {
	env := EnvResult{
		Name:      name,
		Region:    config.RegionFRA1,
		NodeSize:  config.SizeS2VCPU4GB,
		NodeCount: 2,
	}
	if name == config.EnvProduction {
		env.NodeCount = 3
		env.HighAvailability = true
	}

	var minInput, maxInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[config.Region]().
				Title("Region").
				Description("DigitalOcean datacenter region").
				Options(RegionOptions()...).
				Value(&env.Region),
			huh.NewSelect[config.NodeSize]().
				Title("Node Size").
				Description("Droplet size for worker nodes").
				Options(NodeSizeOptions()...).
				Value(&env.NodeSize),
			huh.NewSelect[int]().
				Title("Node Count").
				Options(NodeCountOptions()...).
				Value(&env.NodeCount),
			huh.NewInput().
				Title("Min Nodes (Optional)").
				Description("Autoscaler lower bound, empty to disable").
				Value(&minInput).
				Validate(validateBound),
			huh.NewInput().
				Title("Max Nodes (Optional)").
				Description("Autoscaler upper bound, empty to disable").
				Value(&maxInput).
				Validate(validateBound),
			huh.NewConfirm().
				Title("High Availability Control Plane?").
				Description("DOKS HA control plane, recommended for production").
				Value(&env.HighAvailability),
		).Title(fmt.Sprintf("Environment: %s", name)),
	).RunWithContext(ctx)
	if err != nil {
		return env, err
	}

	env.MinNodes = parseBound(minInput)
	env.MaxNodes = parseBound(maxInput)

	// Cross-check the bounds against the chosen count before moving on.
	probe := config.Config{Environments: []config.Environment{{
		Name: name,
		Cluster: config.ClusterSpec{
			Region:    env.Region,
			NodeSize:  env.NodeSize,
			NodeCount: env.NodeCount,
			MinNodes:  env.MinNodes,
			MaxNodes:  env.MaxNodes,
		},
	}}}
	if err := probe.ValidatePartial(); err != nil {
		return env, err
	}

	return env, nil
}

// runFeaturesGroup prompts for the feature flags.
func runFeaturesGroup(ctx context.Context, result *Result) error {
	// Defaults come preselected from the options.
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Features").
				Description("Platform capabilities to enable").
				Options(FeatureOptions()...).
				Value(&result.Features),
		).Title("Features"),
	).RunWithContext(ctx)
}

// runAppsGroup prompts for the application selection.
func runAppsGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[config.AppName]().
				Title("Applications").
				Description("Platform applications to deploy").
				Options(AppOptions()...).
				Value(&result.Apps),
		).Title("Applications"),
	).RunWithContext(ctx)
}

// fieldValidator builds a huh validator for a single config field by running
// the schema's partial validation over a probe config containing only that
// field, and surfacing the message recorded for its path.
func fieldValidator(path string, required error, probe func(string) config.Config) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return required
		}

		cfg := probe(s)
		err := cfg.ValidatePartial()
		if err == nil {
			return nil
		}

		var verr *config.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				if f.Path == path {
					return errors.New(f.Message)
				}
			}
		}
		return err
	}
}

// validateBound accepts an empty string or a positive whole number.
func validateBound(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errBoundInvalid
	}
	return nil
}

// parseBound converts a validated bound input to its int value (0 = unset).
func parseBound(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
