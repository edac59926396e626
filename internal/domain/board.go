package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        string
	Description string
}

type Board struct {
	Id          BoardId   `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Aggregates for the board index page.
	TopicCount int `json:"topic_count"`
	PostCount  int `json:"post_count"`
}
