package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/goboards-dev/goboards/internal/domain"
	internal_errors "github.com/goboards-dev/goboards/internal/errors"
)

func (s *Storage) CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.BoardId, error) {
	var id domain.BoardId
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO boards (name, description) VALUES ($1, $2) RETURNING id",
		data.Name, data.Description,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, &internal_errors.ErrorWithStatusCode{
				Message:    "Board already exists",
				StatusCode: http.StatusConflict,
			}
		}
		return 0, fmt.Errorf("failed to insert board: %w", err)
	}
	return id, nil
}

func (s *Storage) GetBoards(ctx context.Context) ([]domain.Board, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            b.id, b.name, b.description, b.created,
            count(DISTINCT t.id) AS topic_count,
            count(p.id) AS post_count
        FROM boards b
        LEFT JOIN topics t ON t.board_id = b.id
        LEFT JOIN posts p ON p.topic_id = t.id
        GROUP BY b.id
        ORDER BY b.name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Id, &b.Name, &b.Description, &b.CreatedAt, &b.TopicCount, &b.PostCount); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

func (s *Storage) BoardExists(ctx context.Context, board domain.BoardId) error {
	var id domain.BoardId
	err := s.db.QueryRowContext(ctx, "SELECT id FROM boards WHERE id = $1", board).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Board")
		}
		return fmt.Errorf("failed to check board: %w", err)
	}
	return nil
}
