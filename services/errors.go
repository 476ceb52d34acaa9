package services

import (
	"errors"
	"fmt"
	"strings"

	"planner/dto"
)

// ErrNotFound also covers records owned by another user, so a caller
// cannot tell them apart from ids that do not exist.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries field-level problems with a request.
type ValidationError struct {
	Issues []dto.Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.Field + " " + is.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Issues: []dto.Issue{{Field: field, Message: fmt.Sprintf(format, args...)}}}
}

// issues collects problems and turns into a *ValidationError when non-empty.
type issues []dto.Issue

func (is *issues) add(field, message string) {
	*is = append(*is, dto.Issue{Field: field, Message: message})
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ValidationError{Issues: is}
}
