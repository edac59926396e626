package service

import (
	"context"

	"github.com/goboards-dev/goboards/internal/domain"
	internal_errors "github.com/goboards-dev/goboards/internal/errors"
)

// to mock service in tests
type TopicService interface {
	List(ctx context.Context, board domain.BoardId, page int) (*domain.TopicPage, error)
	Get(ctx context.Context, board domain.BoardId, id domain.TopicId) (*domain.Topic, error)
	Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error)
}

type Topic struct {
	storage   TopicStorage
	cache     PageCache
	validator TopicValidator
	perPage   int
}

type TopicStorage interface {
	BoardExists(ctx context.Context, board domain.BoardId) error
	ListTopics(ctx context.Context, board domain.BoardId, page, perPage int) (domain.TopicPage, error)
	GetThread(ctx context.Context, board domain.BoardId, id domain.TopicId) (domain.Topic, error)
	CreateTopic(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error)
}

type TopicValidator interface {
	Subject(subject string) error
	Message(message string) error
}

// PageCache is a best-effort cache for listing pages. Implementations
// must treat every method as optional: a miss is always acceptable.
type PageCache interface {
	GetTopicPage(ctx context.Context, board domain.BoardId, page int) (*domain.TopicPage, bool)
	SetTopicPage(ctx context.Context, board domain.BoardId, page int, topics *domain.TopicPage)
	InvalidateBoard(ctx context.Context, board domain.BoardId)
}

func NewTopic(storage TopicStorage, cache PageCache, validator TopicValidator, perPage int) *Topic {
	return &Topic{storage, cache, validator, perPage}
}

func (t *Topic) List(ctx context.Context, board domain.BoardId, page int) (*domain.TopicPage, error) {
	// non-positive pages clamp to the first page, overshoot clamps to
	// the last page inside the storage query
	page = max(1, page)

	if cached, ok := t.cache.GetTopicPage(ctx, board, page); ok {
		return cached, nil
	}

	listing, err := t.storage.ListTopics(ctx, board, page, t.perPage)
	if err != nil {
		return nil, err
	}

	// overshooting pages resolve to the last page; caching them under
	// the requested number would duplicate entries
	if listing.Pagination.CurrentPage == page {
		t.cache.SetTopicPage(ctx, board, page, &listing)
	}
	return &listing, nil
}

func (t *Topic) Get(ctx context.Context, board domain.BoardId, id domain.TopicId) (*domain.Topic, error) {
	topic, err := t.storage.GetThread(ctx, board, id)
	if err != nil {
		return nil, err
	}
	topicViewsTotal.Inc()
	return &topic, nil
}

func (t *Topic) Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	if data.Starter.Id == 0 {
		return 0, internal_errors.Unauthorized()
	}
	if err := t.storage.BoardExists(ctx, data.Board); err != nil {
		return 0, err
	}
	if err := collectFieldErrors(
		t.validator.Subject(data.Subject),
		t.validator.Message(data.SeedPost.Message),
	); err != nil {
		return 0, err
	}

	id, err := t.storage.CreateTopic(ctx, data)
	if err != nil {
		return 0, err
	}

	topicsCreatedTotal.Inc()
	postsCreatedTotal.Inc()
	t.cache.InvalidateBoard(ctx, data.Board)
	return id, nil
}
