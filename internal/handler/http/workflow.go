package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-kb-sync/internal/app"
	"github.com/MKhiriev/go-kb-sync/models"
)

// runWorkflow blocks until the remote run is terminal and relays its JSON
// unchanged. A zero timeout_seconds selects the configured default; larger
// values are cut down to what the server's write deadline allows.
func (h *Handler) runWorkflow(w http.ResponseWriter, r *http.Request) {
	var req models.WorkflowRunRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.runWorkflow", app.MsgInvalidWorkflowRequest, err)
		return
	}

	timeout := time.Duration(req.TimeoutSeconds) * time.Second
	if h.maxWorkflowWait > 0 && timeout > h.maxWorkflowWait {
		h.logger.Debug().Dur("requested", timeout).Dur("limit", h.maxWorkflowWait).Msg("workflow wait clamped")
		timeout = h.maxWorkflowWait
	}
	result, err := h.services.WorkflowService.RunWorkflowAndWait(r.Context(), req.Inputs, timeout)
	if err != nil {
		writeError(w, r, "*Handler.runWorkflow", app.MsgWorkflowRunFailed, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(result)
}
