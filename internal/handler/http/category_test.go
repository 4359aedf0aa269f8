package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/internal/store"
	"github.com/MKhiriev/go-kb-sync/internal/validators"
	"github.com/MKhiriev/go-kb-sync/models"
)

func TestCreateCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t)
		want := models.Category{Name: "Go", Slug: "go", Description: "all about go", IsActive: true}
		created := want
		created.ID = 5
		created.SyncStatus = models.SyncStatusUnsynced
		m.content.EXPECT().CreateCategory(gomock.Any(), want).Return(created, nil)

		rr := doRequest(router, http.MethodPost, "/api/categories", `{"name":"Go","slug":"go","description":"all about go"}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		var got models.Category
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, models.SyncStatusUnsynced, got.SyncStatus)
	})

	t.Run("validation error", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/categories", `{"name":"Go"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Error, "Slug")
	})

	t.Run("malformed json", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/categories", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.content.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, store.ErrSlugAlreadyExists)

		rr := doRequest(router, http.MethodPost, "/api/categories", `{"name":"Go","slug":"go"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("content rule violation", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.content.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
			Return(models.Category{}, fmt.Errorf("%w: %w", service.ErrInvalidContent, validators.ErrInvalidSlug))

		rr := doRequest(router, http.MethodPost, "/api/categories", `{"name":"Go","slug":"Go Lang"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, decodeError(t, rr).Error, "slug must be lowercase")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.content.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, c models.Category) (models.Category, error) {
				assert.Equal(t, int64(5), c.ID)
				assert.Equal(t, "Golang", c.Name)
				return c, nil
			})

		rr := doRequest(router, http.MethodPut, "/api/categories/5", `{"name":"Golang","slug":"go"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodPut, "/api/categories/abc", `{"name":"Golang","slug":"go"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.content.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(models.Category{}, store.ErrCategoryNotFound)

		rr := doRequest(router, http.MethodPut, "/api/categories/5", `{"name":"Golang","slug":"go"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeactivateCategory(t *testing.T) {
	router, m := newTestRouter(t)
	task := models.SyncTask{Kind: models.TaskCategoryDelete, EntityID: 5}
	m.content.EXPECT().DeactivateCategory(gomock.Any(), int64(5)).Return(task, nil)

	rr := doRequest(router, http.MethodDelete, "/api/categories/5", "")

	require.Equal(t, http.StatusAccepted, rr.Code)
	var got models.AcceptedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.AcceptedResponse{Status: "accepted", Task: task}, got)
}

func TestSyncCategory(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{"accepted", "/api/categories/1/sync", nil, http.StatusAccepted},
		{"unknown category", "/api/categories/1/sync", store.ErrCategoryNotFound, http.StatusNotFound},
		{"database error", "/api/categories/1/sync", store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.content.EXPECT().RequestCategorySync(gomock.Any(), int64(1)).
				Return(models.SyncTask{Kind: models.TaskCategorySync, EntityID: 1}, tt.err)

			rr := doRequest(router, http.MethodPost, tt.path, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	t.Run("zero id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/categories/0/sync", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetCategorySyncState(t *testing.T) {
	router, m := newTestRouter(t)
	state := models.SyncState{
		EntityID:  1,
		RemoteID:  "ds-1",
		Status:    models.SyncStatusFailed,
		Error:     "remote down",
		UpdatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	m.content.EXPECT().CategorySyncState(gomock.Any(), int64(1)).Return(state, nil)

	rr := doRequest(router, http.MethodGet, "/api/categories/1/sync", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"entity_id": 1,
		"remote_id": "ds-1",
		"sync_status": "FAILED",
		"sync_error": "remote down",
		"updated_at": "2026-10-01T12:00:00Z"
	}`, rr.Body.String())
}
