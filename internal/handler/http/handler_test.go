package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/mock"
	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/models"
)

type handlerMocks struct {
	content  *mock.MockContentService
	workflow *mock.MockWorkflowService
	appInfo  *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		content:  mock.NewMockContentService(ctrl),
		workflow: mock.NewMockWorkflowService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		ContentService:  m.content,
		WorkflowService: m.workflow,
		AppInfoService:  m.appInfo,
	}, config.Server{RequestTimeout: time.Minute}, logger.Nop())

	return h.Init(), m
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
