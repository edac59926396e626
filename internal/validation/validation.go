// Package validation holds the field-level checks services run before
// any write. Checks return *FieldError so services can enumerate every
// failing field in a single response.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goboards-dev/goboards/internal/domain"
)

type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type TopicValidator struct{}

func (TopicValidator) Subject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return &FieldError{Field: "subject", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(subject) > domain.SubjectMaxLen {
		return &FieldError{Field: "subject", Message: fmt.Sprintf("must be at most %d characters", domain.SubjectMaxLen)}
	}
	return nil
}

func (TopicValidator) Message(message string) error {
	return checkMessage(message)
}

type PostValidator struct{}

func (PostValidator) Message(message string) error {
	return checkMessage(message)
}

type BoardValidator struct{}

func (BoardValidator) Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > 64 {
		return &FieldError{Field: "name", Message: "must be at most 64 characters"}
	}
	return nil
}

func checkMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return &FieldError{Field: "message", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(message) > domain.MessageMaxLen {
		return &FieldError{Field: "message", Message: fmt.Sprintf("must be at most %d characters", domain.MessageMaxLen)}
	}
	return nil
}
