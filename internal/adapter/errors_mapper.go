package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	remoteErr := &RemoteError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}
	if resp.Request != nil {
		remoteErr.Method = resp.Request.Method
		remoteErr.URL = resp.Request.URL
	}

	return remoteErr
}

func transportError(method, url string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, url, err)
}

func asRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from the remote service. Delete
// paths treat it as "already gone".
func IsNotFound(err error) bool {
	remoteErr, ok := asRemoteError(err)
	return ok && remoteErr.StatusCode == http.StatusNotFound
}
