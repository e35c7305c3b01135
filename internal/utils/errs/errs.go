package errs

import "errors"

var (
	ErrAuthFailed      = errors.New("workfront authentication failed")
	ErrRemoteRequest   = errors.New("workfront api request failed")
	ErrUploadFailed    = errors.New("cloudinary upload failed")
	ErrNoDocuments     = errors.New("task has no documents")
	ErrEmptyStatusCode = errors.New("task status code must not be empty")
	ErrInvalidMaxTasks = errors.New("max tasks per run must be positive")
)
