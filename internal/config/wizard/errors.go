package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errProjectNameRequired  = errors.New("project name is required")
	errDomainRequired       = errors.New("domain is required")
	errEmailRequired        = errors.New("contact email is required")
	errEnvironmentsRequired = errors.New("select at least one environment")
	errBoundInvalid         = errors.New("must be a whole number, or empty to disable the bound")
)
