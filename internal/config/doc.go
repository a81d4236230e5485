// Package config defines the platform configuration model and its schema.
//
// The [Config] struct is the canonical representation of a platform's
// desired state: project identity, per-environment cluster sizing, feature
// switches, and the selected applications. Validation is structured: every
// failure is attributed to a field path via [ValidationError], with shape
// violations distinguished from cross-field invariants. Validation never
// touches the process environment, network, or filesystem; file loading
// lives in load.go and the credential preflight in the preflight package.
package config
