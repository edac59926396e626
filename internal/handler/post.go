package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goboards-dev/goboards/internal/api"
	"github.com/goboards-dev/goboards/internal/domain"
	mw "github.com/goboards-dev/goboards/internal/middleware"
	"github.com/goboards-dev/goboards/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.post.Create(r.Context(), domain.PostCreationData{
		Board:   boardId,
		Topic:   topicId,
		Author:  *user,
		Message: body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreatePostResponse{PostId: id})
}

func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	topicId, err := parseIntParam(chi.URLParam(r, "topic"), "topic ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	postId, err := parseIntParam(chi.URLParam(r, "post"), "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.EditPostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.post.Edit(r.Context(), domain.PostEditData{
		Board:   boardId,
		Topic:   topicId,
		Post:    postId,
		Editor:  *user,
		Message: body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
