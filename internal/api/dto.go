package api

import (
	"github.com/goboards-dev/goboards/internal/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CreateTopicRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type CreatePostRequest struct {
	Message string `json:"message" validate:"required"`
}

type EditPostRequest struct {
	Message string `json:"message" validate:"required"`
}

// Response DTOs

type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}

// TopicPageResponse is one page of a board's topic listing.
type TopicPageResponse struct {
	domain.TopicPage
}

// ThreadResponse wraps a full topic with its posts.
type ThreadResponse struct {
	domain.Topic
}

type CreateTopicResponse struct {
	TopicId domain.TopicId `json:"topic_id"`
}

type CreatePostResponse struct {
	PostId domain.PostId `json:"post_id"`
}
