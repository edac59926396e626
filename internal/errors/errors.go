package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFound hides whether the entity is absent or merely not visible
// to the caller. Ownership-scoped lookups reuse it on purpose.
func NotFound(entity string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: entity + " not found", StatusCode: http.StatusNotFound}
}

func Unauthorized() *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
}

// ValidationError enumerates every failing field so the caller can fix
// them in one round trip. It is raised before any write happens.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}
