package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/service"
)

type Handler struct {
	services *service.Services
	validate *validator.Validate

	// maxWorkflowWait caps timeout_seconds so a finished or timed out run
	// is written before the server's write deadline. Zero disables the cap.
	maxWorkflowWait time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		maxWorkflowWait: workflowWaitLimit(cfg.RequestTimeout),
		logger:          logger,
	}
}

// workflowWaitLimit leaves a tenth of the request timeout for the last poll
// and the response itself.
func workflowWaitLimit(requestTimeout time.Duration) time.Duration {
	return requestTimeout - requestTimeout/10
}
