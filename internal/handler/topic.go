package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goboards-dev/goboards/internal/api"
	"github.com/goboards-dev/goboards/internal/domain"
	mw "github.com/goboards-dev/goboards/internal/middleware"
	"github.com/goboards-dev/goboards/internal/utils"
)

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listing, err := h.topic.List(r.Context(), boardId, parsePage(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TopicPageResponse{TopicPage: *listing})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
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

	topic, err := h.topic.Get(r.Context(), boardId, topicId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadResponse{Topic: *topic})
}

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
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

	var body api.CreateTopicRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.topic.Create(r.Context(), domain.TopicCreationData{
		Board:   boardId,
		Subject: body.Subject,
		Starter: *user,
		SeedPost: domain.PostCreationData{
			Board:   boardId,
			Author:  *user,
			Message: body.Message,
		},
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreateTopicResponse{TopicId: id})
}
