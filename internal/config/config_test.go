package config

import (
	"testing"
)

func TestEnvironmentName_IsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  EnvironmentName
		want bool
	}{
		{"valid staging", EnvStaging, true},
		{"valid production", EnvProduction, true},
		{"invalid empty", EnvironmentName(""), false},
		{"invalid dev", EnvironmentName("dev"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.env.IsValid(); got != tt.want {
				t.Errorf("EnvironmentName.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegion_IsValid(t *testing.T) {
	t.Parallel()
	for _, r := range ValidRegions() {
		if !r.IsValid() {
			t.Errorf("region %q should be valid", r)
		}
	}

	invalid := []Region{"", "nyc2", "eu-central-1"}
	for _, r := range invalid {
		if r.IsValid() {
			t.Errorf("region %q should be invalid", r)
		}
	}
}

func TestRegion_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		region Region
		want   string
	}{
		{RegionFRA1, "fra1 (Frankfurt, Germany)"},
		{RegionNYC1, "nyc1 (New York, USA)"},
		{Region("unknown"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			t.Parallel()
			if got := tt.region.String(); got != tt.want {
				t.Errorf("Region.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeSize_Specs(t *testing.T) {
	t.Parallel()
	for _, s := range ValidNodeSizes() {
		specs := s.Specs()
		if specs.VCPU == 0 || specs.RAMGB == 0 {
			t.Errorf("node size %q has empty specs", s)
		}
	}

	if specs := (NodeSize("bogus")).Specs(); specs.VCPU != 0 {
		t.Errorf("unknown size should have zero specs, got %+v", specs)
	}
}

func TestNodeSize_String(t *testing.T) {
	t.Parallel()
	if got, want := SizeS2VCPU4GB.String(), "s-2vcpu-4gb (2 vCPU, 4GB RAM)"; got != want {
		t.Errorf("NodeSize.String() = %v, want %v", got, want)
	}
	if got, want := NodeSize("bogus").String(), "bogus"; got != want {
		t.Errorf("NodeSize.String() = %v, want %v", got, want)
	}
}

func TestAppName_IsValid(t *testing.T) {
	t.Parallel()
	for _, a := range ValidApps() {
		if !a.IsValid() {
			t.Errorf("app %q should be valid", a)
		}
	}
	if AppName("wordpress").IsValid() {
		t.Error("unknown app should be invalid")
	}
}

func TestFeatures_Defaults(t *testing.T) {
	t.Parallel()
	var f Features

	if f.EmailEnabled() {
		t.Error("email should default to false")
	}
	if !f.MonitoringEnabled() {
		t.Error("monitoring should default to true")
	}
	if !f.BackupEnabled() {
		t.Error("backup should default to true")
	}
	if !f.SSLEnabled() {
		t.Error("ssl should default to true")
	}
}

func TestFeatures_ExplicitOverrides(t *testing.T) {
	t.Parallel()
	on, off := true, false
	f := Features{Email: &on, Monitoring: &off, Backup: &off, SSL: &off}

	if !f.EmailEnabled() {
		t.Error("explicit email=true ignored")
	}
	if f.MonitoringEnabled() || f.BackupEnabled() || f.SSLEnabled() {
		t.Error("explicit false flags ignored")
	}
}

func TestConfig_Environment(t *testing.T) {
	t.Parallel()
	cfg := validConfig()

	env := cfg.Environment(EnvProduction)
	if env == nil || env.Name != EnvProduction {
		t.Fatalf("Environment(production) = %v", env)
	}

	cfg.Environments = cfg.Environments[:1]
	if cfg.Environment(EnvProduction) != nil {
		t.Error("expected nil for undefined environment")
	}
}

func TestConfig_HasApp(t *testing.T) {
	t.Parallel()
	cfg := validConfig()

	if !cfg.HasApp(AppKeycloak) {
		t.Error("expected keycloak to be selected")
	}
	if cfg.HasApp(AppMailu) {
		t.Error("mailu should not be selected")
	}
}
