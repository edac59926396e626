package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goboards-dev/goboards/internal/config"
	"github.com/goboards-dev/goboards/internal/service"
)

// Pinger reports whether the storage dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board  service.BoardService
	topic  service.TopicService
	post   service.PostService
	health Pinger
	cfg    *config.Config
}

func New(board service.BoardService, topic service.TopicService, post service.PostService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{board, topic, post, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}
