package handler

import (
	"fmt"
	"net/http"

	"github.com/goboards-dev/goboards/internal/api"
	"github.com/goboards-dev/goboards/internal/domain"
	"github.com/goboards-dev/goboards/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.board.Create(r.Context(), domain.BoardCreationData{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	fmt.Fprintf(w, "%d", id)
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.GetAll(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardListResponse{Boards: boards})
}
