package config

import (
	"fmt"
	"regexp"
)

// Validation patterns, compiled once at package init.
var (
	// projectNameRegex: 1-50 lowercase alphanumeric or hyphens, starting
	// and ending with an alphanumeric character.
	projectNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,48}[a-z0-9])?$`)

	// hostnameRegex: lowercase DNS hostname with at least two labels.
	hostnameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)+$`)

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate checks the full configuration against the schema: every field
// constraint plus the cross-field node-bound rules. All failures found in
// one pass are reported together as a *ValidationError; the node-bound
// rules for an environment are only evaluated once that environment's own
// sizing fields are individually valid, so shape errors are never shadowed
// by bound errors.
func (c *Config) Validate() error {
	var errs collector

	c.Project.validate(&errs, false)

	if errs.shape("environments", len(c.Environments) > 0, "at least one environment is required") {
		for i := range c.Environments {
			c.Environments[i].validate(&errs, i, false)
		}
	}

	validateApps(&errs, c.Applications)

	return errs.err()
}

// ValidatePartial checks only the parts of the configuration that are set.
// Absent fields (zero values, empty collections) are never errors; present
// fields must still satisfy their own and cross-field constraints. Used by
// incremental flows such as the wizard.
func (c *Config) ValidatePartial() error {
	var errs collector

	c.Project.validate(&errs, true)

	for i := range c.Environments {
		c.Environments[i].validate(&errs, i, true)
	}

	validateApps(&errs, c.Applications)

	return errs.err()
}

// validate checks the project fields. In partial mode, empty fields are
// skipped.
func (p *Project) validate(errs *collector, partial bool) {
	if p.Name != "" {
		errs.shape("project.name", projectNameRegex.MatchString(p.Name),
			"must be 1-50 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	} else if !partial {
		errs.shape("project.name", false, "is required")
	}

	if p.Domain != "" {
		errs.shape("project.domain", hostnameRegex.MatchString(p.Domain),
			"must be a lowercase hostname (e.g. example.com)")
	} else if !partial {
		errs.shape("project.domain", false, "is required")
	}

	if p.Email != "" {
		errs.shape("project.email", emailRegex.MatchString(p.Email),
			"must be a valid email address")
	} else if !partial {
		errs.shape("project.email", false, "is required")
	}
}

// validate checks one environment and, when its sizing fields are shape
// valid, the node-bound invariants.
func (e *Environment) validate(errs *collector, index int, partial bool) {
	path := func(field string) string {
		return fmt.Sprintf("environments[%d].%s", index, field)
	}

	if e.Name != "" || !partial {
		errs.shape(path("name"), e.Name.IsValid(),
			"must be one of: %v", ValidEnvironmentNames())
	}

	if e.Domain != "" {
		errs.shape(path("domain"), hostnameRegex.MatchString(e.Domain),
			"must be a lowercase hostname (e.g. staging.example.com)")
	} else if !partial {
		errs.shape(path("domain"), false, "is required")
	}

	if e.Cluster.Region != "" || !partial {
		errs.shape(path("cluster.region"), e.Cluster.Region.IsValid(),
			"must be one of: %v", ValidRegions())
	}

	if e.Cluster.NodeSize != "" || !partial {
		errs.shape(path("cluster.node_size"), e.Cluster.NodeSize.IsValid(),
			"must be one of: %v", ValidNodeSizes())
	}

	countSet := e.Cluster.NodeCount != 0 || !partial
	countOK := true
	if countSet {
		countOK = errs.shape(path("cluster.node_count"), e.Cluster.NodeCount >= 1,
			"must be at least 1, got %d", e.Cluster.NodeCount)
	}

	minOK := errs.shape(path("cluster.min_nodes"), e.Cluster.MinNodes >= 0,
		"cannot be negative, got %d", e.Cluster.MinNodes)
	maxOK := errs.shape(path("cluster.max_nodes"), e.Cluster.MaxNodes >= 0,
		"cannot be negative, got %d", e.Cluster.MaxNodes)

	// Node-bound rules run only over shape-valid sizing fields.
	minSet := e.Cluster.MinNodes != 0 && minOK
	maxSet := e.Cluster.MaxNodes != 0 && maxOK

	if minSet && countSet && countOK {
		errs.invariant(path("cluster"), e.Cluster.MinNodes <= e.Cluster.NodeCount,
			"min_nodes (%d) must not exceed node_count (%d)", e.Cluster.MinNodes, e.Cluster.NodeCount)
	}
	if maxSet && countSet && countOK {
		errs.invariant(path("cluster"), e.Cluster.MaxNodes >= e.Cluster.NodeCount,
			"max_nodes (%d) must not be below node_count (%d)", e.Cluster.MaxNodes, e.Cluster.NodeCount)
	}
	if minSet && maxSet {
		errs.invariant(path("cluster"), e.Cluster.MinNodes <= e.Cluster.MaxNodes,
			"min_nodes (%d) must not exceed max_nodes (%d)", e.Cluster.MinNodes, e.Cluster.MaxNodes)
	}
}

// validateApps checks every selected application against the known set.
func validateApps(errs *collector, apps []AppName) {
	for i, app := range apps {
		errs.shape(fmt.Sprintf("applications[%d]", i), app.IsValid(),
			"unknown application %q, must be one of: %v", app, ValidApps())
	}
}
