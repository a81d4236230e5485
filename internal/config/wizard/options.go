package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/reefctl/reef/internal/config"
)

// RegionOptions returns the selectable DigitalOcean regions.
func RegionOptions() []huh.Option[config.Region] {
	regions := config.ValidRegions()
	opts := make([]huh.Option[config.Region], len(regions))
	for i, r := range regions {
		opts[i] = huh.NewOption(r.String(), r)
	}
	return opts
}

// NodeSizeOptions returns the selectable droplet sizes for cluster nodes.
func NodeSizeOptions() []huh.Option[config.NodeSize] {
	sizes := config.ValidNodeSizes()
	opts := make([]huh.Option[config.NodeSize], len(sizes))
	for i, s := range sizes {
		opts[i] = huh.NewOption(s.String(), s)
	}
	return opts
}

// EnvironmentOptions returns the selectable environments.
func EnvironmentOptions() []huh.Option[config.EnvironmentName] {
	return []huh.Option[config.EnvironmentName]{
		huh.NewOption("staging - pre-production testing", config.EnvStaging).Selected(true),
		huh.NewOption("production - live workloads", config.EnvProduction).Selected(true),
	}
}

// NodeCountOptions returns the selectable worker node counts.
func NodeCountOptions() []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption("1 node", 1),
		huh.NewOption("2 nodes", 2),
		huh.NewOption("3 nodes", 3),
		huh.NewOption("5 nodes", 5),
	}
}

// Feature keys used in the features multi-select.
const (
	FeatureEmail      = "email"
	FeatureMonitoring = "monitoring"
	FeatureBackup     = "backup"
	FeatureSSL        = "ssl"
)

// FeatureOptions returns the feature flags with their defaults preselected.
func FeatureOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("monitoring - Prometheus and Grafana", FeatureMonitoring).Selected(config.DefaultMonitoring),
		huh.NewOption("backup - scheduled volume and database backups", FeatureBackup).Selected(config.DefaultBackup),
		huh.NewOption("ssl - Let's Encrypt certificates via Kong", FeatureSSL).Selected(config.DefaultSSL),
		huh.NewOption("email - outbound mail through an SMTP relay", FeatureEmail).Selected(config.DefaultEmail),
	}
}

// AppOptions returns the selectable platform applications.
func AppOptions() []huh.Option[config.AppName] {
	return []huh.Option[config.AppName]{
		huh.NewOption("keycloak - single sign-on", config.AppKeycloak),
		huh.NewOption("mattermost - team messaging", config.AppMattermost),
		huh.NewOption("nextcloud - file sharing", config.AppNextcloud),
		huh.NewOption("mailu - mail server", config.AppMailu),
	}
}
