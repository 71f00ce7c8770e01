package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionNotFound means no live wizard session exists for the user,
	// either because the wizard was never started or the session expired.
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrNotConfigured means the chat has no destination channel set up.
	ErrNotConfigured = errors.New("destination channel not configured")
)

// FieldError names one offending field of a rejected page submission.
type FieldError struct {
	Day   Weekday
	Value string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %q ungültig", e.Day, e.Value)
}

// ValidationError rejects an entire page submission. The session is left
// unchanged; the user resubmits the whole page.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return "invalid fields: " + strings.Join(msgs, ", ")
}
