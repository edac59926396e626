package service

import (
	"context"

	"github.com/goboards-dev/goboards/internal/domain"
	internal_errors "github.com/goboards-dev/goboards/internal/errors"
)

// to mock service in tests
type PostService interface {
	Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error)
	Edit(ctx context.Context, data domain.PostEditData) error
}

type Post struct {
	storage   PostStorage
	cache     PageCache
	validator PostValidator
}

type PostStorage interface {
	TopicExists(ctx context.Context, board domain.BoardId, topic domain.TopicId) error
	// FindOwnPost resolves the post scoped by its author: a post that
	// belongs to someone else reports the same NotFound as a missing one.
	FindOwnPost(ctx context.Context, board domain.BoardId, topic domain.TopicId, post domain.PostId, author domain.UserId) error
	CreatePost(ctx context.Context, data domain.PostCreationData) (domain.PostId, error)
	EditPost(ctx context.Context, data domain.PostEditData) error
}

type PostValidator interface {
	Message(message string) error
}

func NewPost(storage PostStorage, cache PageCache, validator PostValidator) *Post {
	return &Post{storage, cache, validator}
}

func (p *Post) Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error) {
	if data.Author.Id == 0 {
		return 0, internal_errors.Unauthorized()
	}
	if err := p.storage.TopicExists(ctx, data.Board, data.Topic); err != nil {
		return 0, err
	}
	if err := collectFieldErrors(p.validator.Message(data.Message)); err != nil {
		return 0, err
	}

	id, err := p.storage.CreatePost(ctx, data)
	if err != nil {
		return 0, err
	}

	postsCreatedTotal.Inc()
	// the reply bumped last_updated, listing order changed
	p.cache.InvalidateBoard(ctx, data.Board)
	return id, nil
}

func (p *Post) Edit(ctx context.Context, data domain.PostEditData) error {
	if data.Editor.Id == 0 {
		return internal_errors.Unauthorized()
	}
	if err := p.storage.FindOwnPost(ctx, data.Board, data.Topic, data.Post, data.Editor.Id); err != nil {
		return err
	}
	if err := collectFieldErrors(p.validator.Message(data.Message)); err != nil {
		return err
	}

	return p.storage.EditPost(ctx, data)
}
