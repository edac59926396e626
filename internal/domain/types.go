package domain

type (
	UserId  = int64
	BoardId = int64
	TopicId = int64
	PostId  = int64

	Subject = string
	MsgText = string
)

// Field limits enforced before any write.
const (
	SubjectMaxLen = 255
	MessageMaxLen = 4000
)
