package manifest

import "fmt"

// ManifestErrorType represents the type of manifest error.
type ManifestErrorType int

const (
	// ManifestReadFailed indicates the manifest file could not be read.
	ManifestReadFailed ManifestErrorType = iota
	// ManifestInvalid indicates the manifest is not a JSON object.
	ManifestInvalid
	// ManifestMissingSection indicates a required section is absent or not an object.
	ManifestMissingSection
	// ManifestWriteFailed indicates the manifest file could not be written.
	ManifestWriteFailed
)

// ManifestError represents a manifest-related error.
type ManifestError struct {
	// Type is the error type.
	Type ManifestErrorType
	// Message is the error message.
	Message string
	// File is the manifest path, when known.
	File string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

func newError(typ ManifestErrorType, message string, cause error) *ManifestError {
	return &ManifestError{Type: typ, Message: message, Cause: cause}
}
