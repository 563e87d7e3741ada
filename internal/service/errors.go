package service

import (
	"errors"
	"strings"
)

var (
	ErrWrongPassword  = errors.New("wrong password")
	ErrNotCourseOwner = errors.New("user does not own this course")
)

// ValidationError carries the full ordered list of rule violations found in a
// request payload, so the transport layer can report all of them at once
// instead of failing on the first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError wraps the given rule-violation messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}
