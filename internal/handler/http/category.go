package http

import (
	"net/http"

	"github.com/MKhiriev/go-kb-sync/internal/app"
	"github.com/MKhiriev/go-kb-sync/internal/utils"
	"github.com/MKhiriev/go-kb-sync/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.createCategory", app.MsgInvalidCategory, err)
		return
	}

	category, err := h.services.ContentService.CreateCategory(r.Context(), req.ToCategory())
	if err != nil {
		writeError(w, r, "*Handler.createCategory", app.MsgCreateCategoryFailed, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateCategory", app.MsgInvalidCategoryID, err)
		return
	}

	var req models.CategoryRequest
	if err = h.decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.updateCategory", app.MsgInvalidCategory, err)
		return
	}

	category := req.ToCategory()
	category.ID = id
	updated, err := h.services.ContentService.UpdateCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, "*Handler.updateCategory", app.MsgUpdateCategoryFailed, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deactivateCategory answers 202: the row disappears once the scheduled
// delete has removed the remote dataset.
func (h *Handler) deactivateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.deactivateCategory", app.MsgInvalidCategoryID, err)
		return
	}

	task, err := h.services.ContentService.DeactivateCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.deactivateCategory", app.MsgDeactivateCategoryFailed, err)
		return
	}

	utils.WriteJSON(w, models.AcceptedResponse{Status: "accepted", Task: task}, http.StatusAccepted)
}

func (h *Handler) syncCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.syncCategory", app.MsgInvalidCategoryID, err)
		return
	}

	task, err := h.services.ContentService.RequestCategorySync(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.syncCategory", app.MsgCategorySyncFailed, err)
		return
	}

	utils.WriteJSON(w, models.AcceptedResponse{Status: "accepted", Task: task}, http.StatusAccepted)
}

func (h *Handler) getCategorySyncState(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.getCategorySyncState", app.MsgInvalidCategoryID, err)
		return
	}

	state, err := h.services.ContentService.CategorySyncState(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getCategorySyncState", app.MsgCategoryStateFailed, err)
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}
