package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goboards-dev/goboards/internal/domain"
	internal_errors "github.com/goboards-dev/goboards/internal/errors"
)

// ListTopics returns one listing page ordered by last_updated desc with
// topic id as a deterministic tie-break. The requested page is clamped
// to [1, totalPages], it never errors on overshoot.
func (s *Storage) ListTopics(ctx context.Context, board domain.BoardId, page, perPage int) (domain.TopicPage, error) {
	if err := s.BoardExists(ctx, board); err != nil {
		return domain.TopicPage{}, err
	}

	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT count(*) FROM topics WHERE board_id = $1", board,
	).Scan(&total)
	if err != nil {
		return domain.TopicPage{}, fmt.Errorf("failed to count topics: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT
            t.id, t.subject, t.board_id, t.views, t.created, t.last_updated,
            u.id, u.name,
            count(p.id) - 1 AS reply_count
        FROM topics t
        JOIN users u ON u.id = t.starter_id
        LEFT JOIN posts p ON p.topic_id = t.id
        WHERE t.board_id = $1
        GROUP BY t.id, u.id
        ORDER BY t.last_updated DESC, t.id ASC
        LIMIT $2 OFFSET $3
    `, board, perPage, (page-1)*perPage)
	if err != nil {
		return domain.TopicPage{}, fmt.Errorf("failed to fetch topics: %w", err)
	}
	defer rows.Close()

	topics := []domain.TopicMetadata{}
	for rows.Next() {
		var t domain.TopicMetadata
		if err := rows.Scan(
			&t.Id, &t.Subject, &t.Board, &t.Views, &t.CreatedAt, &t.LastUpdated,
			&t.Starter.Id, &t.Starter.Name, &t.ReplyCount,
		); err != nil {
			return domain.TopicPage{}, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return domain.TopicPage{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return domain.TopicPage{
		Topics: topics,
		Pagination: domain.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}, nil
}

// GetThread fetches a topic with its posts in creation order. The view
// counter bump rides on the lookup itself: a single UPDATE .. RETURNING
// so concurrent fetches never lose increments.
func (s *Storage) GetThread(ctx context.Context, board domain.BoardId, id domain.TopicId) (domain.Topic, error) {
	var metadata domain.TopicMetadata
	var starterId domain.UserId
	err := s.db.QueryRowContext(ctx, `
        UPDATE topics SET views = views + 1
        WHERE board_id = $1 AND id = $2
        RETURNING id, subject, board_id, starter_id, views, created, last_updated
    `, board, id).Scan(
		&metadata.Id, &metadata.Subject, &metadata.Board, &starterId,
		&metadata.Views, &metadata.CreatedAt, &metadata.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Topic{}, internal_errors.NotFound("Topic")
		}
		return domain.Topic{}, fmt.Errorf("failed to fetch topic: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT
            p.id, p.message, p.topic_id, p.created, p.updated_by, p.updated,
            u.id, u.name
        FROM posts p
        JOIN users u ON u.id = p.created_by
        WHERE p.topic_id = $1
        ORDER BY p.created, p.id
    `, id)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.Id, &post.Message, &post.Topic, &post.CreatedAt,
			&post.UpdatedBy, &post.UpdatedAt,
			&post.CreatedBy.Id, &post.CreatedBy.Name,
		); err != nil {
			return domain.Topic{}, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
		if post.CreatedBy.Id == starterId {
			metadata.Starter = post.CreatedBy
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Topic{}, fmt.Errorf("rows iteration error: %w", err)
	}

	// every topic carries its seed post
	metadata.ReplyCount = len(posts) - 1

	return domain.Topic{TopicMetadata: metadata, Posts: posts}, nil
}

// CreateTopic inserts the topic and its seed post in one transaction,
// either both rows commit or neither does. Column defaults share the
// transaction timestamp, so created and last_updated start equal.
func (s *Storage) CreateTopic(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify board exists
	var boardId domain.BoardId
	err = tx.QueryRowContext(ctx, "SELECT id FROM boards WHERE id = $1", data.Board).Scan(&boardId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Board")
		}
		return 0, fmt.Errorf("failed to validate board: %w", err)
	}

	if err := syncUser(tx, data.Starter.Id, data.Starter.Name); err != nil {
		return 0, err
	}

	var id domain.TopicId
	err = tx.QueryRowContext(ctx, `
        INSERT INTO topics (subject, board_id, starter_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, data.Subject, data.Board, data.Starter.Id).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert topic: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO posts (message, topic_id, created_by)
        VALUES ($1, $2, $3)
    `, data.SeedPost.Message, id, data.Starter.Id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert seed post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *Storage) TopicExists(ctx context.Context, board domain.BoardId, topic domain.TopicId) error {
	var id domain.TopicId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM topics WHERE id = $1 AND board_id = $2", topic, board,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Topic")
		}
		return fmt.Errorf("failed to check topic: %w", err)
	}
	return nil
}
