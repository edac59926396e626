// Package cache keeps rendered topic-listing pages in Redis. It is
// strictly best-effort: any Redis failure degrades to a cache miss and
// the caller falls through to Postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goboards-dev/goboards/internal/domain"
)

type TopicPages struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr. An empty addr or a failed ping returns
// a nil-client cache where every lookup is a miss.
func New(ctx context.Context, addr string, ttl time.Duration) *TopicPages {
	if addr == "" {
		return &TopicPages{}
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, continuing without cache", "addr", addr, "err", err)
		return &TopicPages{}
	}

	return &TopicPages{client: client, ttl: ttl}
}

func (c *TopicPages) Cleanup() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func boardKey(board domain.BoardId) string {
	return fmt.Sprintf("board:%d:topic_pages", board)
}

func (c *TopicPages) GetTopicPage(ctx context.Context, board domain.BoardId, page int) (*domain.TopicPage, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.HGet(ctx, boardKey(board), strconv.Itoa(page)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Debug("cache read failed", "board", board, "page", page, "err", err)
		}
		return nil, false
	}

	var listing domain.TopicPage
	if err := json.Unmarshal(raw, &listing); err != nil {
		slog.Debug("cache entry corrupt, dropping", "board", board, "page", page, "err", err)
		c.InvalidateBoard(ctx, board)
		return nil, false
	}
	return &listing, true
}

func (c *TopicPages) SetTopicPage(ctx context.Context, board domain.BoardId, page int, listing *domain.TopicPage) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(listing)
	if err != nil {
		return
	}

	key := boardKey(board)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(page), raw)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Debug("cache write failed", "board", board, "page", page, "err", err)
	}
}

// InvalidateBoard drops every cached page of a board. One key per
// board keeps invalidation a single DEL.
func (c *TopicPages) InvalidateBoard(ctx context.Context, board domain.BoardId) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, boardKey(board)).Err(); err != nil {
		slog.Debug("cache invalidation failed", "board", board, "err", err)
	}
}
