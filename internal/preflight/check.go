// Package preflight inspects the process environment for the credentials a
// configuration needs before any infrastructure work starts.
//
// The check itself is pure and read-only: it reports findings through
// [Result] and never fails. Escalating a bad result into a terminal error is
// a separate step ([Result.Err]) so interactive callers can recover, e.g. by
// prompting for the missing values.
package preflight

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/reefctl/reef/internal/config"
)

// Environment provides environment variable lookups. Abstracting os.Getenv
// keeps Check deterministic in tests without mutating real process state.
type Environment interface {
	Getenv(key string) string
}

// OSEnv reads from the real process environment.
type OSEnv struct{}

// Getenv implements Environment.
func (OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}

// MapEnv is a fixed in-memory environment, used in tests.
type MapEnv map[string]string

// Getenv implements Environment.
func (m MapEnv) Getenv(key string) string {
	return m[key]
}

// doTokenRegex matches a DigitalOcean API token: the dop_v1_ prefix followed
// by 64 hex characters.
var doTokenRegex = regexp.MustCompile(`^dop_v1_[0-9a-f]{64}$`)

// Var is an environment variable the platform may require.
type Var struct {
	// Name is the exact variable name.
	Name string

	// Description explains what the variable is used for.
	Description string

	// Example is a sample export line shown in remediation guidance.
	Example string

	// Pattern, when set, is checked against present values. A mismatch is
	// surfaced as a warning, never as a missing entry.
	Pattern *regexp.Regexp

	// Hint describes the expected format in warning messages.
	Hint string
}

// BaseVars returns the variables required for every deployment.
func BaseVars() []Var {
	return []Var{
		{
			Name:        "DIGITALOCEAN_TOKEN",
			Description: "DigitalOcean API token used to provision the cluster",
			Example:     "export DIGITALOCEAN_TOKEN=dop_v1_<64 hex characters>",
			Pattern:     doTokenRegex,
			Hint:        "a DigitalOcean token (dop_v1_ followed by 64 hex characters)",
		},
	}
}

// EmailVars returns the variables required when the email feature is
// enabled. Mailu relays outbound mail through an authenticated SMTP
// provider.
func EmailVars() []Var {
	return []Var{
		{
			Name:        "SMTP_USERNAME",
			Description: "SMTP relay username for outbound mail",
			Example:     "export SMTP_USERNAME=postmaster@example.com",
		},
		{
			Name:        "SMTP_PASSWORD",
			Description: "SMTP relay password for outbound mail",
			Example:     "export SMTP_PASSWORD=<relay password>",
		},
	}
}

// VarsFor returns the variables a configuration with the given features
// requires: base variables first, then feature-conditional ones in their
// declaration order. The feature-to-variable mapping is a fixed table.
func VarsFor(features config.Features) []Var {
	vars := BaseVars()
	if features.EmailEnabled() {
		vars = append(vars, EmailVars()...)
	}
	return vars
}

// Result is the outcome of a preflight check. Missing and Warnings keep the
// order in which variables were examined.
type Result struct {
	Missing  []string
	Warnings []string
}

// Valid reports whether every required variable is present. It is derived
// from Missing; warnings alone never invalidate a result.
func (r Result) Valid() bool {
	return len(r.Missing) == 0
}

// MarshalJSON includes the derived valid field for machine consumers.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid    bool     `json:"valid"`
		Missing  []string `json:"missing"`
		Warnings []string `json:"warnings"`
	}{
		Valid:    r.Valid(),
		Missing:  r.Missing,
		Warnings: r.Warnings,
	})
}

// Check inspects env for every variable the configuration requires. A
// variable is missing when it is unset or blank after trimming whitespace.
// Present values are additionally checked against their format pattern;
// mismatches become warnings. Check never fails and has no side effects.
func Check(env Environment, cfg *config.Config) Result {
	result := Result{}

	for _, v := range VarsFor(cfg.Features) {
		value := strings.TrimSpace(env.Getenv(v.Name))
		if value == "" {
			result.Missing = append(result.Missing, v.Name)
			continue
		}
		if v.Pattern != nil && !v.Pattern.MatchString(value) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s does not look like %s", v.Name, v.Hint))
		}
	}

	return result
}

// ErrMissingCredentials is returned by Result.Err when required variables
// are absent.
var ErrMissingCredentials = errors.New("missing required environment variables")

// Err converts a failing result into a terminal error listing the missing
// variables. Returns nil for a valid result. This is the only escalation
// path; Check itself never errors.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(r.Missing, ", "))
}

// VarByName returns the declaration for a variable name, used to print
// remediation guidance for missing entries.
func VarByName(name string) (Var, bool) {
	for _, v := range append(BaseVars(), EmailVars()...) {
		if v.Name == name {
			return v, true
		}
	}
	return Var{}, false
}
