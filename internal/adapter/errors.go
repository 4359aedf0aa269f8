package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps failures where no HTTP response was received:
	// connection refused, DNS errors, timeouts, cancelled contexts.
	ErrTransport = errors.New("knowledge base transport error")

	// ErrRemote matches every [*RemoteError] via errors.Is.
	ErrRemote = errors.New("knowledge base returned an error status")

	// ErrMalformedResponse is returned when a 2xx response is not valid JSON
	// or lacks the expected identifier field.
	ErrMalformedResponse = errors.New("malformed knowledge base response")
)

// RemoteError is a non-2xx response from the remote service. Body holds the
// response body verbatim.
type RemoteError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Is reports whether target is [ErrRemote].
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
