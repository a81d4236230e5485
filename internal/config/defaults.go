package config

// Feature defaults. Email is opt-in because it pulls in SMTP relay
// credentials; everything else is on unless disabled.
const (
	DefaultEmail      = false
	DefaultMonitoring = true
	DefaultBackup     = true
	DefaultSSL        = true
)

// Finalize returns a copy of the configuration with every unset feature flag
// resolved to its documented default. The input is never mutated, and
// finalizing an already-finalized config returns an equal value.
func Finalize(c Config) Config {
	out := c

	out.Environments = make([]Environment, len(c.Environments))
	copy(out.Environments, c.Environments)

	out.Applications = make([]AppName, len(c.Applications))
	copy(out.Applications, c.Applications)

	out.Features = Features{
		Email:      boolPtr(c.Features.EmailEnabled()),
		Monitoring: boolPtr(c.Features.MonitoringEnabled()),
		Backup:     boolPtr(c.Features.BackupEnabled()),
		SSL:        boolPtr(c.Features.SSLEnabled()),
	}

	return out
}

func boolPtr(v bool) *bool {
	return &v
}
