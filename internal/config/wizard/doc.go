// Package wizard provides the interactive configuration wizard for reef.
//
// The wizard guides users through project identity, environment sizing,
// feature flags, and application selection using charmbracelet/huh forms.
// Per-field answers are validated incrementally through the config package's
// partial validation, so users see schema errors as they type rather than
// after the fact.
//
// The main entry point is RunWizard, which returns a Result. Use
// Result.ToConfig to build a config.Config and WriteConfig to generate the
// YAML output file.
package wizard
