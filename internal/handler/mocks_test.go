package handler

import (
	"context"

	"github.com/goboards-dev/goboards/internal/domain"
)

type MockTopicService struct {
	MockList   func(board domain.BoardId, page int) (*domain.TopicPage, error)
	MockGet    func(board domain.BoardId, id domain.TopicId) (*domain.Topic, error)
	MockCreate func(data domain.TopicCreationData) (domain.TopicId, error)
}

func (m *MockTopicService) List(_ context.Context, board domain.BoardId, page int) (*domain.TopicPage, error) {
	if m.MockList != nil {
		return m.MockList(board, page)
	}
	return &domain.TopicPage{}, nil
}

func (m *MockTopicService) Get(_ context.Context, board domain.BoardId, id domain.TopicId) (*domain.Topic, error) {
	if m.MockGet != nil {
		return m.MockGet(board, id)
	}
	return &domain.Topic{}, nil
}

func (m *MockTopicService) Create(_ context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

type MockPostService struct {
	MockCreate func(data domain.PostCreationData) (domain.PostId, error)
	MockEdit   func(data domain.PostEditData) error
}

func (m *MockPostService) Create(_ context.Context, data domain.PostCreationData) (domain.PostId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

func (m *MockPostService) Edit(_ context.Context, data domain.PostEditData) error {
	if m.MockEdit != nil {
		return m.MockEdit(data)
	}
	return nil
}

type MockBoardService struct {
	MockCreate func(data domain.BoardCreationData) (domain.BoardId, error)
	MockGetAll func() ([]domain.Board, error)
}

func (m *MockBoardService) Create(_ context.Context, data domain.BoardCreationData) (domain.BoardId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

func (m *MockBoardService) GetAll(_ context.Context) ([]domain.Board, error) {
	if m.MockGetAll != nil {
		return m.MockGetAll()
	}
	return nil, nil
}
