package models

// AcceptedResponse is returned when a sync task has been queued.
type AcceptedResponse struct {
	Status string   `json:"status"`
	Task   SyncTask `json:"task"`
}

// ErrorResponse is the JSON error envelope of the local API.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}
