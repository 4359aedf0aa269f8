package utils

import "github.com/google/uuid"

// NewTraceID returns the id that ties log lines of one HTTP request or one
// sync task run together. UUIDv7 keeps ids sortable by start time; a v4 is
// used when the v7 clock source fails.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
