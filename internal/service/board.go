package service

import (
	"context"

	"github.com/goboards-dev/goboards/internal/domain"
)

// to mock service in tests
type BoardService interface {
	Create(ctx context.Context, data domain.BoardCreationData) (domain.BoardId, error)
	GetAll(ctx context.Context) ([]domain.Board, error)
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.BoardId, error)
	GetBoards(ctx context.Context) ([]domain.Board, error)
}

type BoardValidator interface {
	Name(name string) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) *Board {
	return &Board{storage, validator}
}

func (b *Board) Create(ctx context.Context, data domain.BoardCreationData) (domain.BoardId, error) {
	if err := collectFieldErrors(b.validator.Name(data.Name)); err != nil {
		return 0, err
	}
	return b.storage.CreateBoard(ctx, data)
}

func (b *Board) GetAll(ctx context.Context) ([]domain.Board, error) {
	return b.storage.GetBoards(ctx)
}
