// Package loaderror defines the typed errors returned when ledger, event or
// budget snapshots cannot be read.
package loaderror

import "fmt"

// ParseError represents a field that could not be parsed from an input row
type ParseError struct {
	Source string
	Line   int
	Field  string
	Value  string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: failed to parse %s='%s': %v",
			e.Source, e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying parse failure
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents input that parsed but is not usable
type ValidationError struct {
	FilePath string
	Reason   string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// DuplicateIDError is returned when a record ID appears twice in a collection
type DuplicateIDError struct {
	Kind string
	ID   string
}

// Error implements the error interface
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id '%s'", e.Kind, e.ID)
}

// NotFoundError is returned when a record ID is unknown
type NotFoundError struct {
	Kind string
	ID   string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.ID)
}
