package service

import "errors"

var (
	// ErrMissingRunID is returned when a workflow start response is not
	// terminal and carries no run identifier to poll.
	ErrMissingRunID = errors.New("workflow response has no run id")

	// ErrWorkflowFailed wraps the error text reported by the remote side.
	ErrWorkflowFailed = errors.New("workflow run failed")

	// ErrWorkflowTimeout is returned when polling did not observe a terminal
	// status in time. The message names the run id.
	ErrWorkflowTimeout = errors.New("workflow run timed out")

	// ErrDocumentUpdateRejected is stored when the remote side answers a file
	// update with a non-2xx status.
	ErrDocumentUpdateRejected = errors.New("remote document update was rejected")

	// ErrInvalidContent wraps a content rule violation found before any
	// write reaches storage.
	ErrInvalidContent = errors.New("invalid content")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
