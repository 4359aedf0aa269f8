package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
)

const (
	defaultWorkflowPollInterval = time.Second
	defaultWorkflowTimeout      = 2 * time.Minute
)

// Remote workflow statuses.
const (
	workflowStatusSucceeded = "succeeded"
	workflowStatusCompleted = "completed"
	workflowStatusFailed    = "failed"
)

type workflowService struct {
	kb adapter.KnowledgeBaseAdapter

	pollInterval   time.Duration
	defaultTimeout time.Duration

	logger *logger.Logger
}

func NewWorkflowService(kb adapter.KnowledgeBaseAdapter, cfg config.Workers, logger *logger.Logger) WorkflowService {
	s := &workflowService{
		kb:             kb,
		pollInterval:   cfg.WorkflowPollInterval,
		defaultTimeout: cfg.WorkflowTimeout,
		logger:         logger,
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultWorkflowPollInterval
	}
	if s.defaultTimeout <= 0 {
		s.defaultTimeout = defaultWorkflowTimeout
	}

	return s
}

// RunWorkflowAndWait starts a workflow and waits for its outcome.
//
// A start response that already carries output text, or a succeeded/failed
// status, is final. Otherwise the run id ("workflow_run_id", falling back to
// "data.id") is polled every poll interval while less than timeout has
// passed since the start call. The timeout is only checked between polls,
// so the call may overrun it by one poll round-trip. Cancelling ctx aborts
// the wait.
func (s *workflowService) RunWorkflowAndWait(ctx context.Context, inputs map[string]any, timeout time.Duration) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if timeout <= 0 {
		timeout = s.defaultTimeout
	}

	started := time.Now()
	resp, err := s.kb.InvokeWorkflow(ctx, inputs)
	if err != nil {
		log.Err(err).Str("func", "*workflowService.RunWorkflowAndWait").Msg("error invoking workflow")
		return nil, err
	}

	if text := gjson.GetBytes(resp, "data.outputs.text"); text.String() != "" {
		return resp, nil
	}
	switch gjson.GetBytes(resp, "data.status").String() {
	case workflowStatusSucceeded:
		return resp, nil
	case workflowStatusFailed:
		return nil, fmt.Errorf("%w: %s", ErrWorkflowFailed, remoteErrorText(resp, "data.error"))
	}

	runID := firstString(resp, "workflow_run_id", "data.id")
	if runID == "" {
		return nil, ErrMissingRunID
	}
	taskID := gjson.GetBytes(resp, "task_id").String()

	log.Debug().Str("func", "*workflowService.RunWorkflowAndWait").
		Str("run_id", runID).
		Dur("timeout", timeout).
		Msg("polling workflow run")

	for time.Since(started) < timeout {
		poll, err := s.kb.PollWorkflowRun(ctx, runID)
		if err != nil {
			log.Err(err).Str("func", "*workflowService.RunWorkflowAndWait").Str("run_id", runID).Msg("error polling workflow run")
			return nil, err
		}

		switch gjson.GetBytes(poll, "status").String() {
		case workflowStatusCompleted, workflowStatusSucceeded:
			return poll, nil
		case workflowStatusFailed:
			return nil, fmt.Errorf("%w: %s", ErrWorkflowFailed, remoteErrorText(poll, "error"))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}

	if taskID != "" {
		return nil, fmt.Errorf("%w: run %s (task %s) after %s", ErrWorkflowTimeout, runID, taskID, timeout)
	}
	return nil, fmt.Errorf("%w: run %s after %s", ErrWorkflowTimeout, runID, timeout)
}

func firstString(raw json.RawMessage, paths ...string) string {
	for _, path := range paths {
		if v := gjson.GetBytes(raw, path).String(); v != "" {
			return v
		}
	}
	return ""
}

func remoteErrorText(raw json.RawMessage, path string) string {
	if msg := gjson.GetBytes(raw, path).String(); msg != "" {
		return msg
	}
	return "unknown error"
}
