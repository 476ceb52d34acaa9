package dto

import (
	"errors"
	"strings"
	"time"
)

// Issue is one field-level validation problem.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

const dateLayout = "2006-01-02"

// FormatTime renders a stored timestamp as an ISO-8601 string in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

var errBadTime = errors.New("must be an ISO-8601 date or date-time")

// ParseTime accepts RFC 3339 date-times and plain YYYY-MM-DD dates (read as
// UTC midnight).
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, errBadTime
}
