package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kb-sync/models"
)

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t)
	info := models.AppInfo{Version: "1.4.0", BuildDate: "2026-10-01", BuildCommit: "abc123"}
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(info)

	rr := doRequest(router, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.AppInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}
