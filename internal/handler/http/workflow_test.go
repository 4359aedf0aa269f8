package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/service"
)

func TestRunWorkflow_RelaysRemoteJSON(t *testing.T) {
	router, m := newTestRouter(t)
	result := json.RawMessage(`{"status":"succeeded","outputs":{"text":"hi"}}`)
	m.workflow.EXPECT().
		RunWorkflowAndWait(gomock.Any(), map[string]any{"query": "hello"}, 30*time.Second).
		Return(result, nil)

	rr := doRequest(router, http.MethodPost, "/api/workflows/run", `{"inputs":{"query":"hello"},"timeout_seconds":30}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, string(result), rr.Body.String())
}

func TestRunWorkflow_DefaultTimeout(t *testing.T) {
	router, m := newTestRouter(t)
	m.workflow.EXPECT().RunWorkflowAndWait(gomock.Any(), gomock.Nil(), time.Duration(0)).Return(json.RawMessage(`{}`), nil)

	rr := doRequest(router, http.MethodPost, "/api/workflows/run", `{}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRunWorkflow_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"timeout", fmt.Errorf("%w: run r-1 after 1s", service.ErrWorkflowTimeout), http.StatusGatewayTimeout},
		{"failed", fmt.Errorf("%w: node crashed", service.ErrWorkflowFailed), http.StatusBadGateway},
		{"missing run id", service.ErrMissingRunID, http.StatusBadGateway},
		{"remote error", &adapter.RemoteError{StatusCode: http.StatusUnauthorized, Method: http.MethodPost, URL: "/workflows/run"}, http.StatusBadGateway},
		{"transport", fmt.Errorf("%w: dial tcp", adapter.ErrTransport), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.workflow.EXPECT().RunWorkflowAndWait(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := doRequest(router, http.MethodPost, "/api/workflows/run", `{"inputs":{}}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeError(t, rr)
			assert.Contains(t, body.Error, tt.err.Error())
			assert.NotEmpty(t, body.TraceID)
		})
	}
}

func TestRunWorkflow_TimeoutOutOfRange(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/workflows/run", `{"timeout_seconds":-1}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRunWorkflow_TimeoutClampedToWriteDeadline(t *testing.T) {
	router, m := newTestRouter(t)
	// the test router runs with a one minute request timeout
	m.workflow.EXPECT().
		RunWorkflowAndWait(gomock.Any(), gomock.Nil(), 54*time.Second).
		Return(json.RawMessage(`{}`), nil)

	rr := doRequest(router, http.MethodPost, "/api/workflows/run", `{"timeout_seconds":3600}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWorkflowWaitLimit(t *testing.T) {
	assert.Equal(t, 162*time.Second, workflowWaitLimit(3*time.Minute))
	assert.Zero(t, workflowWaitLimit(0))
}
