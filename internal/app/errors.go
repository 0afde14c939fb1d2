package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// InputAborted indicates the user cancelled the form.
	InputAborted AppErrorType = iota
	// InputFailed indicates the form could not be shown or its answers were invalid.
	InputFailed
	// MaterializeFailed indicates the project directory could not be created or filled.
	MaterializeFailed
	// ManifestFailed indicates the project manifest could not be updated.
	ManifestFailed
	// ConfigFailed indicates the configuration could not be loaded.
	ConfigFailed
)

// String returns the name of the error type.
func (t AppErrorType) String() string {
	switch t {
	case InputAborted:
		return "InputAborted"
	case InputFailed:
		return "InputFailed"
	case MaterializeFailed:
		return "MaterializeFailed"
	case ManifestFailed:
		return "ManifestFailed"
	case ConfigFailed:
		return "ConfigFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewInputAbortedError creates an error for a cancelled form.
func NewInputAbortedError(cause error) *AppError {
	return NewAppError(InputAborted, "input aborted", cause)
}

// NewInputError creates an input error.
func NewInputError(message string, cause error) *AppError {
	return NewAppError(InputFailed, message, cause)
}

// NewMaterializeError creates a materialization error.
func NewMaterializeError(message string, cause error) *AppError {
	return NewAppError(MaterializeFailed, message, cause)
}

// NewManifestError creates a manifest error.
func NewManifestError(message string, cause error) *AppError {
	return NewAppError(ManifestFailed, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ConfigFailed, message, cause)
}
