package client

import "errors"

var (
	ErrInvalidID    = errors.New("id must be a positive integer")
	ErrInvalidInput = errors.New("input must have the form key=value")
	ErrSyncFailed   = errors.New("sync failed")
)
