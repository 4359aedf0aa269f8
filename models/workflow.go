package models

// WorkflowRunRequest is the body accepted by the local workflow endpoint.
type WorkflowRunRequest struct {
	Inputs         map[string]any `json:"inputs"`
	TimeoutSeconds int            `json:"timeout_seconds" validate:"gte=0,lte=3600"`
}
