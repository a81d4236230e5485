package config

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// KindShape marks a field that fails its own type, pattern, or range
	// constraint.
	KindShape ErrorKind = "shape"

	// KindInvariant marks a cross-field rule violated on an otherwise
	// shape-valid object.
	KindInvariant ErrorKind = "invariant"
)

// FieldError is a single validation failure attributed to a field path
// (e.g. "environments[0].cluster.node_count").
type FieldError struct {
	Path    string
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationError aggregates every field failure found in one validation
// pass, so callers can attribute each message to the offending field instead
// of parsing an opaque string.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "configuration invalid"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "configuration invalid: " + strings.Join(msgs, "; ")
}

// Has reports whether any failure was recorded for the given path.
func (e *ValidationError) Has(path string) bool {
	for _, f := range e.Fields {
		if f.Path == path {
			return true
		}
	}
	return false
}

// collector accumulates field errors during a validation pass.
// The zero value is ready to use.
type collector struct {
	fields []FieldError
}

// shape records a shape failure when ok is false and returns ok, so callers
// can gate dependent checks on the result.
func (c *collector) shape(path string, ok bool, format string, args ...any) bool {
	if !ok {
		c.fields = append(c.fields, FieldError{
			Path:    path,
			Kind:    KindShape,
			Message: fmt.Sprintf(format, args...),
		})
	}
	return ok
}

// invariant records a cross-field failure when ok is false.
func (c *collector) invariant(path string, ok bool, format string, args ...any) {
	if !ok {
		c.fields = append(c.fields, FieldError{
			Path:    path,
			Kind:    KindInvariant,
			Message: fmt.Sprintf(format, args...),
		})
	}
}

// err returns the accumulated *ValidationError, or nil when every check
// passed.
func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}
