package wizard

import (
	"github.com/reefctl/reef/internal/config"
)

// ToConfig converts the wizard answers into a finalized Config. Every
// feature flag is written explicitly so the generated file documents the
// effective settings.
func (r *Result) ToConfig() config.Config {
	cfg := config.Config{
		Project: config.Project{
			Name:        r.ProjectName,
			Domain:      r.Domain,
			Email:       r.Email,
			Description: r.Description,
		},
		Features:     r.features(),
		Applications: append([]config.AppName(nil), r.Apps...),
	}

	for _, env := range r.Environments {
		cfg.Environments = append(cfg.Environments, config.Environment{
			Name:   env.Name,
			Domain: environmentDomain(env.Name, r.Domain),
			Cluster: config.ClusterSpec{
				Region:           env.Region,
				NodeSize:         env.NodeSize,
				NodeCount:        env.NodeCount,
				MinNodes:         env.MinNodes,
				MaxNodes:         env.MaxNodes,
				HighAvailability: env.HighAvailability,
			},
		})
	}

	return config.Finalize(cfg)
}

// features maps the multi-select keys onto explicit flags.
func (r *Result) features() config.Features {
	selected := make(map[string]bool, len(r.Features))
	for _, key := range r.Features {
		selected[key] = true
	}

	flag := func(key string) *bool {
		v := selected[key]
		return &v
	}

	return config.Features{
		Email:      flag(FeatureEmail),
		Monitoring: flag(FeatureMonitoring),
		Backup:     flag(FeatureBackup),
		SSL:        flag(FeatureSSL),
	}
}

// environmentDomain derives the per-environment base domain: production
// serves the bare project domain, everything else gets a prefix.
func environmentDomain(name config.EnvironmentName, domain string) string {
	if name == config.EnvProduction {
		return domain
	}
	return string(name) + "." + domain
}
