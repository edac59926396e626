package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goboards-dev/goboards/internal/domain"
	internal_errors "github.com/goboards-dev/goboards/internal/errors"
)

// CreatePost appends a reply and bumps the topic's last_updated to the
// new post's creation time within the same transaction. The bump is
// what keeps the listing ordered by activity.
func (s *Storage) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.PostId, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Resolve the board/topic pairing, a topic reached through the
	// wrong board id must not resolve
	var topicId domain.TopicId
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM topics WHERE id = $1 AND board_id = $2", data.Topic, data.Board,
	).Scan(&topicId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Topic")
		}
		return 0, fmt.Errorf("failed to validate topic: %w", err)
	}

	if err := syncUser(tx, data.Author.Id, data.Author.Name); err != nil {
		return 0, err
	}

	var id domain.PostId
	var created time.Time
	err = tx.QueryRowContext(ctx, `
        INSERT INTO posts (message, topic_id, created_by)
        VALUES ($1, $2, $3)
        RETURNING id, created
    `, data.Message, data.Topic, data.Author.Id).Scan(&id, &created)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE topics SET last_updated = $1 WHERE id = $2", created, data.Topic,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bump topic: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// FindOwnPost resolves a post with the author match inside the query
// predicate. Someone else's post and a missing post are the same
// NotFound, existence never leaks.
func (s *Storage) FindOwnPost(ctx context.Context, board domain.BoardId, topic domain.TopicId, post domain.PostId, author domain.UserId) error {
	var id domain.PostId
	err := s.db.QueryRowContext(ctx, `
        SELECT p.id
        FROM posts p
        JOIN topics t ON t.id = p.topic_id
        WHERE p.id = $1 AND p.topic_id = $2 AND t.board_id = $3 AND p.created_by = $4
    `, post, topic, board, author).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Post")
		}
		return fmt.Errorf("failed to resolve post: %w", err)
	}
	return nil
}

// EditPost updates the message with the same ownership-scoped predicate
// used for resolution. Zero affected rows reads as NotFound.
func (s *Storage) EditPost(ctx context.Context, data domain.PostEditData) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE posts p
        SET message = $1, updated_by = $2, updated = now()
        FROM topics t
        WHERE p.id = $3 AND p.topic_id = $4 AND t.id = p.topic_id
          AND t.board_id = $5 AND p.created_by = $2
    `, data.Message, data.Editor.Id, data.Post, data.Topic, data.Board)
	if err != nil {
		return fmt.Errorf("failed to edit post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Post")
	}
	return nil
}
