package domain

import (
	"time"
)

type TopicCreationData struct {
	Board    BoardId
	Subject  Subject
	Starter  User
	SeedPost PostCreationData
}

type TopicMetadata struct {
	Id          TopicId   `json:"id"`
	Subject     Subject   `json:"subject"`
	Board       BoardId   `json:"board_id"`
	Starter     User      `json:"starter"`
	Views       int64     `json:"views"`
	ReplyCount  int       `json:"reply_count"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

type Topic struct {
	TopicMetadata
	Posts []*Post `json:"posts"`
}

// Pagination describes a page boundary within a board's topic listing.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// TopicPage is one listing page: topics ordered by last_updated desc,
// ties broken by id asc so page boundaries are reproducible.
type TopicPage struct {
	Topics     []TopicMetadata `json:"topics"`
	Pagination Pagination      `json:"pagination"`
}
