package project

import "fmt"

// ProjectErrorType represents the type of materialization error.
type ProjectErrorType int

const (
	// CreateFailed indicates the project directory could not be created.
	CreateFailed ProjectErrorType = iota
	// TargetNotEmpty indicates the project directory already holds files.
	TargetNotEmpty
	// CopyFailed indicates the template could not be copied.
	CopyFailed
	// ManifestFailed indicates the manifest could not be patched.
	ManifestFailed
)

// ProjectError represents a failed materialization step.
type ProjectError struct {
	// Type is the error type.
	Type ProjectErrorType
	// Path is the file or directory involved.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Path)
}

// Unwrap returns the underlying cause error.
func (e *ProjectError) Unwrap() error {
	return e.Cause
}
