package service

import (
	"context"
	"sync"

	"github.com/goboards-dev/goboards/internal/domain"
)

// --- Mocks ---

// MockTopicStorage mocks the TopicStorage interface.
type MockTopicStorage struct {
	boardExistsFunc func(board domain.BoardId) error
	listTopicsFunc  func(board domain.BoardId, page, perPage int) (domain.TopicPage, error)
	getThreadFunc   func(board domain.BoardId, id domain.TopicId) (domain.Topic, error)
	createTopicFunc func(data domain.TopicCreationData) (domain.TopicId, error)

	mu                sync.Mutex
	createTopicCalled bool
	listPageArg       int
}

func (m *MockTopicStorage) BoardExists(_ context.Context, board domain.BoardId) error {
	if m.boardExistsFunc != nil {
		return m.boardExistsFunc(board)
	}
	return nil
}

func (m *MockTopicStorage) ListTopics(_ context.Context, board domain.BoardId, page, perPage int) (domain.TopicPage, error) {
	m.mu.Lock()
	m.listPageArg = page
	m.mu.Unlock()

	if m.listTopicsFunc != nil {
		return m.listTopicsFunc(board, page, perPage)
	}
	return domain.TopicPage{Pagination: domain.Pagination{CurrentPage: page, TotalPages: page}}, nil
}

func (m *MockTopicStorage) GetThread(_ context.Context, board domain.BoardId, id domain.TopicId) (domain.Topic, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(board, id)
	}
	return domain.Topic{TopicMetadata: domain.TopicMetadata{Id: id, Board: board}}, nil
}

func (m *MockTopicStorage) CreateTopic(_ context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	m.mu.Lock()
	m.createTopicCalled = true
	m.mu.Unlock()

	if m.createTopicFunc != nil {
		return m.createTopicFunc(data)
	}
	return 1, nil
}

// MockPostStorage mocks the PostStorage interface.
type MockPostStorage struct {
	topicExistsFunc func(board domain.BoardId, topic domain.TopicId) error
	findOwnPostFunc func(board domain.BoardId, topic domain.TopicId, post domain.PostId, author domain.UserId) error
	createPostFunc  func(data domain.PostCreationData) (domain.PostId, error)
	editPostFunc    func(data domain.PostEditData) error

	mu               sync.Mutex
	createPostCalled bool
	editPostCalled   bool
}

func (m *MockPostStorage) TopicExists(_ context.Context, board domain.BoardId, topic domain.TopicId) error {
	if m.topicExistsFunc != nil {
		return m.topicExistsFunc(board, topic)
	}
	return nil
}

func (m *MockPostStorage) FindOwnPost(_ context.Context, board domain.BoardId, topic domain.TopicId, post domain.PostId, author domain.UserId) error {
	if m.findOwnPostFunc != nil {
		return m.findOwnPostFunc(board, topic, post, author)
	}
	return nil
}

func (m *MockPostStorage) CreatePost(_ context.Context, data domain.PostCreationData) (domain.PostId, error) {
	m.mu.Lock()
	m.createPostCalled = true
	m.mu.Unlock()

	if m.createPostFunc != nil {
		return m.createPostFunc(data)
	}
	return 1, nil
}

func (m *MockPostStorage) EditPost(_ context.Context, data domain.PostEditData) error {
	m.mu.Lock()
	m.editPostCalled = true
	m.mu.Unlock()

	if m.editPostFunc != nil {
		return m.editPostFunc(data)
	}
	return nil
}

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	createBoardFunc func(data domain.BoardCreationData) (domain.BoardId, error)
	getBoardsFunc   func() ([]domain.Board, error)
}

func (m *MockBoardStorage) CreateBoard(_ context.Context, data domain.BoardCreationData) (domain.BoardId, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(data)
	}
	return 1, nil
}

func (m *MockBoardStorage) GetBoards(_ context.Context) ([]domain.Board, error) {
	if m.getBoardsFunc != nil {
		return m.getBoardsFunc()
	}
	return nil, nil
}

// MockPageCache records cache traffic in memory.
type MockPageCache struct {
	mu          sync.Mutex
	entries     map[domain.BoardId]map[int]*domain.TopicPage
	invalidated []domain.BoardId
}

func NewMockPageCache() *MockPageCache {
	return &MockPageCache{entries: make(map[domain.BoardId]map[int]*domain.TopicPage)}
}

func (m *MockPageCache) GetTopicPage(_ context.Context, board domain.BoardId, page int) (*domain.TopicPage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	listing, ok := m.entries[board][page]
	return listing, ok
}

func (m *MockPageCache) SetTopicPage(_ context.Context, board domain.BoardId, page int, listing *domain.TopicPage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[board] == nil {
		m.entries[board] = make(map[int]*domain.TopicPage)
	}
	m.entries[board][page] = listing
}

func (m *MockPageCache) InvalidateBoard(_ context.Context, board domain.BoardId) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, board)
	m.invalidated = append(m.invalidated, board)
}
