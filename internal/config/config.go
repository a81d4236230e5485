package config

import "fmt"

// Config is the full platform configuration: one project, at least one
// environment, the feature switches that gate external credentials, and the
// set of applications to deploy. A Config is treated as immutable once
// validated; corrections produce a new value via Finalize, never an in-place
// patch.
type Config struct {
	// Project identifies the platform owner and its primary domain.
	Project Project `yaml:"project"`

	// Environments lists the deployment targets in order. At least one is
	// required; names are drawn from the fixed staging/production set.
	Environments []Environment `yaml:"environments"`

	// Features toggles platform capabilities. Unset flags fall back to
	// their documented defaults (see Finalize).
	Features Features `yaml:"features"`

	// Applications selects which platform applications to deploy.
	// Duplicates are tolerated and treated as a set.
	Applications []AppName `yaml:"applications"`
}

// Project describes the owning project of the platform.
type Project struct {
	// Name is used for resource naming and tagging.
	// Must be 1-50 lowercase alphanumeric characters or hyphens,
	// starting and ending with an alphanumeric character.
	Name string `yaml:"name"`

	// Domain is the base domain applications are served under.
	Domain string `yaml:"domain"`

	// Email is the operator contact, used for Let's Encrypt notifications
	// and platform alerts.
	Email string `yaml:"email"`

	// Description is free text, optional.
	Description string `yaml:"description,omitempty"`
}

// Environment is a single deployment target with its cluster sizing.
type Environment struct {
	// Name is the environment identity (staging or production).
	Name EnvironmentName `yaml:"name"`

	// Cluster defines the DOKS cluster for this environment.
	Cluster ClusterSpec `yaml:"cluster"`

	// Domain is the environment-specific base domain
	// (e.g. staging.example.com).
	Domain string `yaml:"domain"`
}

// ClusterSpec defines the managed Kubernetes cluster sizing for one
// environment.
type ClusterSpec struct {
	// Region is the DigitalOcean datacenter region.
	Region Region `yaml:"region"`

	// NodeSize is the droplet size for worker nodes.
	NodeSize NodeSize `yaml:"node_size"`

	// NodeCount is the number of worker nodes (at least 1).
	NodeCount int `yaml:"node_count"`

	// MinNodes and MaxNodes bound the autoscaler when set (0 = unset).
	// When set, MinNodes <= NodeCount <= MaxNodes must hold.
	MinNodes int `yaml:"min_nodes,omitempty"`
	MaxNodes int `yaml:"max_nodes,omitempty"`

	// HighAvailability enables the HA control plane offered by DOKS.
	HighAvailability bool `yaml:"high_availability,omitempty"`

	// Version pins the Kubernetes version slug. Empty means the provider
	// default channel.
	Version string `yaml:"version,omitempty"`
}

// Features are the platform capability switches. Pointers distinguish
// "explicitly set" from "unset"; Finalize resolves unset flags to their
// defaults (email=false, monitoring/backup/ssl=true).
type Features struct {
	Email      *bool `yaml:"email,omitempty"`
	Monitoring *bool `yaml:"monitoring,omitempty"`
	Backup     *bool `yaml:"backup,omitempty"`
	SSL        *bool `yaml:"ssl,omitempty"`
}

// EmailEnabled reports the email flag, applying the default (false) when
// unset.
func (f Features) EmailEnabled() bool {
	if f.Email == nil {
		return false
	}
	return *f.Email
}

// MonitoringEnabled reports the monitoring flag, applying the default (true)
// when unset.
func (f Features) MonitoringEnabled() bool {
	if f.Monitoring == nil {
		return true
	}
	return *f.Monitoring
}

// BackupEnabled reports the backup flag, applying the default (true) when
// unset.
func (f Features) BackupEnabled() bool {
	if f.Backup == nil {
		return true
	}
	return *f.Backup
}

// SSLEnabled reports the ssl flag, applying the default (true) when unset.
func (f Features) SSLEnabled() bool {
	if f.SSL == nil {
		return true
	}
	return *f.SSL
}

// EnvironmentName is a deployment environment identity.
type EnvironmentName string

const (
	// EnvStaging is the pre-production environment.
	EnvStaging EnvironmentName = "staging"
	// EnvProduction is the production environment.
	EnvProduction EnvironmentName = "production"
)

// ValidEnvironmentNames returns all valid environment names.
func ValidEnvironmentNames() []EnvironmentName {
	return []EnvironmentName{EnvStaging, EnvProduction}
}

// IsValid returns true if the name is a known environment.
func (n EnvironmentName) IsValid() bool {
	switch n {
	case EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

// Region is a DigitalOcean datacenter region slug.
type Region string

const (
	// RegionNYC1 is New York 1, USA.
	RegionNYC1 Region = "nyc1"
	// RegionNYC3 is New York 3, USA.
	RegionNYC3 Region = "nyc3"
	// RegionSFO3 is San Francisco 3, USA.
	RegionSFO3 Region = "sfo3"
	// RegionAMS3 is Amsterdam 3, Netherlands.
	RegionAMS3 Region = "ams3"
	// RegionFRA1 is Frankfurt 1, Germany.
	RegionFRA1 Region = "fra1"
	// RegionLON1 is London 1, United Kingdom.
	RegionLON1 Region = "lon1"
	// RegionSGP1 is Singapore 1.
	RegionSGP1 Region = "sgp1"
	// RegionSYD1 is Sydney 1, Australia.
	RegionSYD1 Region = "syd1"
)

// ValidRegions returns all valid regions.
func ValidRegions() []Region {
	return []Region{
		RegionNYC1, RegionNYC3, RegionSFO3, RegionAMS3,
		RegionFRA1, RegionLON1, RegionSGP1, RegionSYD1,
	}
}

// IsValid returns true if the region is a valid DigitalOcean region.
func (r Region) IsValid() bool {
	switch r {
	case RegionNYC1, RegionNYC3, RegionSFO3, RegionAMS3,
		RegionFRA1, RegionLON1, RegionSGP1, RegionSYD1:
		return true
	default:
		return false
	}
}

// String returns a human-readable description of the region.
func (r Region) String() string {
	switch r {
	case RegionNYC1:
		return "nyc1 (New York, USA)"
	case RegionNYC3:
		return "nyc3 (New York, USA)"
	case RegionSFO3:
		return "sfo3 (San Francisco, USA)"
	case RegionAMS3:
		return "ams3 (Amsterdam, Netherlands)"
	case RegionFRA1:
		return "fra1 (Frankfurt, Germany)"
	case RegionLON1:
		return "lon1 (London, United Kingdom)"
	case RegionSGP1:
		return "sgp1 (Singapore)"
	case RegionSYD1:
		return "syd1 (Sydney, Australia)"
	default:
		return string(r)
	}
}

// NodeSize is a DigitalOcean droplet size slug for cluster nodes.
type NodeSize string

const (
	// SizeS2VCPU2GB is 2 shared vCPU, 2GB RAM.
	SizeS2VCPU2GB NodeSize = "s-2vcpu-2gb"
	// SizeS2VCPU4GB is 2 shared vCPU, 4GB RAM.
	SizeS2VCPU4GB NodeSize = "s-2vcpu-4gb"
	// SizeS4VCPU8GB is 4 shared vCPU, 8GB RAM.
	SizeS4VCPU8GB NodeSize = "s-4vcpu-8gb"
	// SizeS8VCPU16GB is 8 shared vCPU, 16GB RAM.
	SizeS8VCPU16GB NodeSize = "s-8vcpu-16gb"
	// SizeG4VCPU16GB is 4 dedicated vCPU, 16GB RAM (general purpose).
	SizeG4VCPU16GB NodeSize = "g-4vcpu-16gb"
	// SizeG8VCPU32GB is 8 dedicated vCPU, 32GB RAM (general purpose).
	SizeG8VCPU32GB NodeSize = "g-8vcpu-32gb"
)

// ValidNodeSizes returns all valid node sizes.
func ValidNodeSizes() []NodeSize {
	return []NodeSize{
		SizeS2VCPU2GB, SizeS2VCPU4GB, SizeS4VCPU8GB, SizeS8VCPU16GB,
		SizeG4VCPU16GB, SizeG8VCPU32GB,
	}
}

// IsValid returns true if the node size is a valid droplet slug.
func (s NodeSize) IsValid() bool {
	switch s {
	case SizeS2VCPU2GB, SizeS2VCPU4GB, SizeS4VCPU8GB, SizeS8VCPU16GB,
		SizeG4VCPU16GB, SizeG8VCPU32GB:
		return true
	default:
		return false
	}
}

// NodeSpecs contains the hardware specifications for a node size.
type NodeSpecs struct {
	VCPU      int
	RAMGB     int
	Dedicated bool
}

// Specs returns the hardware specifications for this node size.
func (s NodeSize) Specs() NodeSpecs {
	switch s {
	case SizeS2VCPU2GB:
		return NodeSpecs{VCPU: 2, RAMGB: 2}
	case SizeS2VCPU4GB:
		return NodeSpecs{VCPU: 2, RAMGB: 4}
	case SizeS4VCPU8GB:
		return NodeSpecs{VCPU: 4, RAMGB: 8}
	case SizeS8VCPU16GB:
		return NodeSpecs{VCPU: 8, RAMGB: 16}
	case SizeG4VCPU16GB:
		return NodeSpecs{VCPU: 4, RAMGB: 16, Dedicated: true}
	case SizeG8VCPU32GB:
		return NodeSpecs{VCPU: 8, RAMGB: 32, Dedicated: true}
	default:
		return NodeSpecs{}
	}
}

// String returns a human-readable description of the node size.
func (s NodeSize) String() string {
	specs := s.Specs()
	if specs.VCPU == 0 {
		return string(s)
	}
	return fmt.Sprintf("%s (%d vCPU, %dGB RAM)", string(s), specs.VCPU, specs.RAMGB)
}

// AppName is a platform application identity.
type AppName string

const (
	// AppKeycloak is the identity and access management application.
	AppKeycloak AppName = "keycloak"
	// AppMattermost is the team messaging application.
	AppMattermost AppName = "mattermost"
	// AppNextcloud is the file sharing and collaboration application.
	AppNextcloud AppName = "nextcloud"
	// AppMailu is the mail server application.
	AppMailu AppName = "mailu"
)

// ValidApps returns all valid application names.
func ValidApps() []AppName {
	return []AppName{AppKeycloak, AppMattermost, AppNextcloud, AppMailu}
}

// IsValid returns true if the application name is known.
func (a AppName) IsValid() bool {
	switch a {
	case AppKeycloak, AppMattermost, AppNextcloud, AppMailu:
		return true
	default:
		return false
	}
}

// Environment returns the environment with the given name, or nil if the
// config does not define it.
func (c *Config) Environment(name EnvironmentName) *Environment {
	for i := range c.Environments {
		if c.Environments[i].Name == name {
			return &c.Environments[i]
		}
	}
	return nil
}

// HasApp reports whether the application is selected, ignoring duplicates.
func (c *Config) HasApp(name AppName) bool {
	for _, a := range c.Applications {
		if a == name {
			return true
		}
	}
	return false
}
