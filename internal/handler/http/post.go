package http

import (
	"net/http"

	"github.com/MKhiriev/go-kb-sync/internal/app"
	"github.com/MKhiriev/go-kb-sync/internal/utils"
	"github.com/MKhiriev/go-kb-sync/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req models.PostRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.createPost", app.MsgInvalidPost, err)
		return
	}

	post, err := h.services.ContentService.CreatePost(r.Context(), req.ToPost())
	if err != nil {
		writeError(w, r, "*Handler.createPost", app.MsgCreatePostFailed, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.updatePost", app.MsgInvalidPostID, err)
		return
	}

	var req models.PostRequest
	if err = h.decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.updatePost", app.MsgInvalidPost, err)
		return
	}

	post := req.ToPost()
	post.ID = id
	updated, err := h.services.ContentService.UpdatePost(r.Context(), post)
	if err != nil {
		writeError(w, r, "*Handler.updatePost", app.MsgUpdatePostFailed, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) syncPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.syncPost", app.MsgInvalidPostID, err)
		return
	}

	task, err := h.services.ContentService.RequestPostSync(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.syncPost", app.MsgPostSyncFailed, err)
		return
	}

	utils.WriteJSON(w, models.AcceptedResponse{Status: "accepted", Task: task}, http.StatusAccepted)
}

func (h *Handler) getPostSyncState(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, "*Handler.getPostSyncState", app.MsgInvalidPostID, err)
		return
	}

	state, err := h.services.ContentService.PostSyncState(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getPostSyncState", app.MsgPostStateFailed, err)
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}
