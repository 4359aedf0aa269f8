package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:          http.StatusBadRequest,
	ErrInvalidRequestBody: http.StatusBadRequest,

	service.ErrInvalidContent:  http.StatusUnprocessableEntity,
	service.ErrWorkflowTimeout: http.StatusGatewayTimeout,
	service.ErrWorkflowFailed:  http.StatusBadGateway,
	service.ErrMissingRunID:    http.StatusBadGateway,

	adapter.ErrTransport:         http.StatusBadGateway,
	adapter.ErrRemote:            http.StatusBadGateway,
	adapter.ErrMalformedResponse: http.StatusBadGateway,

	store.ErrCategoryNotFound:  http.StatusNotFound,
	store.ErrPostNotFound:      http.StatusNotFound,
	store.ErrSlugAlreadyExists: http.StatusConflict,
	store.ErrUnknownCategory:   http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
