package domain

import (
	"database/sql"
	"time"
)

type PostCreationData struct {
	Board   BoardId
	Topic   TopicId
	Author  User
	Message MsgText
}

type PostEditData struct {
	Board   BoardId
	Topic   TopicId
	Post    PostId
	Editor  User
	Message MsgText
}

// Post is a single message within a topic. CreatedBy never changes;
// UpdatedBy/UpdatedAt stay null until the first edit.
type Post struct {
	Id        PostId        `json:"id"`
	Topic     TopicId       `json:"topic_id"`
	Message   MsgText       `json:"message"`
	CreatedBy User          `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedBy sql.NullInt64 `json:"updated_by"`
	UpdatedAt sql.NullTime  `json:"updated_at"`
}
