package publish

import "fmt"

// PublishErrorType represents the step of publication that failed.
type PublishErrorType int

const (
	// InitFailed indicates the local repository could not be created.
	InitFailed PublishErrorType = iota
	// CommitFailed indicates staging or committing failed.
	CommitFailed
	// HostingCLIMissing indicates the hosting CLI is not installed.
	HostingCLIMissing
	// RemoteFailed indicates the hosting CLI could not create or push the remote.
	RemoteFailed
	// RepositoryExists indicates root already held a repository, which was reused.
	RepositoryExists
)

// String returns the name of the error type.
func (t PublishErrorType) String() string {
	switch t {
	case InitFailed:
		return "InitFailed"
	case CommitFailed:
		return "CommitFailed"
	case HostingCLIMissing:
		return "HostingCLIMissing"
	case RemoteFailed:
		return "RemoteFailed"
	case RepositoryExists:
		return "RepositoryExists"
	default:
		return "Unknown"
	}
}

// PublishError represents a publication step that did not complete.
// Publish reports these as warnings rather than returning them.
type PublishError struct {
	// Type is the error type.
	Type PublishErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *PublishError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *PublishError) Unwrap() error {
	return e.Cause
}
