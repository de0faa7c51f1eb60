package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"reflector/internal/common"
)

// Diagnostics holds the problems found while resolving generation targets.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this class of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies which type this relates to (if any).
	TypeName string
	// Suggestions are near-miss alternatives for unknown names.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		TypeName: typeName,
	})
}

// AddErrorSuggesting records an error diagnostic with candidate alternatives.
func (d *Diagnostics) AddErrorSuggesting(code, message, typeName string, suggestions []string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		TypeName:    typeName,
		Suggestions: suggestions,
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		TypeName: typeName,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.TypeName != "" {
		msg = d.TypeName + ": " + msg
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return msg
}
