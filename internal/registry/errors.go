package registry

import "fmt"

// LookupErrorType represents the type of registry lookup error.
type LookupErrorType int

const (
	// LookupTransport indicates the request could not be sent or answered.
	LookupTransport LookupErrorType = iota
	// LookupNotFound indicates the registry does not know the package.
	LookupNotFound
	// LookupStatus indicates an unexpected HTTP status code.
	LookupStatus
	// LookupDecode indicates the registry response could not be parsed.
	LookupDecode
)

// LookupError represents a failed version lookup.
type LookupError struct {
	// Type is the error type.
	Type LookupErrorType
	// Package is the package being looked up.
	Package string
	// StatusCode is the HTTP status code, when one was received.
	StatusCode int
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	switch e.Type {
	case LookupNotFound:
		return fmt.Sprintf("package %s not found in registry", e.Package)
	case LookupStatus:
		return fmt.Sprintf("registry returned status %d for %s", e.StatusCode, e.Package)
	case LookupDecode:
		return fmt.Sprintf("failed to parse registry metadata for %s: %v", e.Package, e.Cause)
	default:
		return fmt.Sprintf("failed to fetch versions of %s: %v", e.Package, e.Cause)
	}
}

// Unwrap returns the underlying cause error.
func (e *LookupError) Unwrap() error {
	return e.Cause
}
