package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"planner/dto"
	"planner/store"
)

// DefaultColor is used when a colored record is created without one.
const DefaultColor = "#3b82f6"

type record interface {
	SetID(id string)
}

// deps is embedded by every service.
type deps struct {
	store   store.DocumentStore
	now     func() time.Time
	changed func(userID string)
}

func newDeps(s store.DocumentStore) deps {
	return deps{store: s, now: time.Now}
}

// SetClock replaces the wall clock, for tests.
func (d *deps) SetClock(now func() time.Time) {
	d.now = now
}

// OnChange registers fn to run after every successful write made on behalf
// of a user.
func (d *deps) OnChange(fn func(userID string)) {
	d.changed = fn
}

func (d *deps) touch(userID string) {
	if d.changed != nil {
		d.changed(userID)
	}
}

func (d *deps) timestamp() time.Time {
	return d.now().UTC()
}

func decode[T any, P interface {
	*T
	record
}](doc store.Document) (*T, error) {
	v := new(T)
	if err := doc.DataTo(v); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", doc.ID(), err)
	}
	P(v).SetID(doc.ID())
	return v, nil
}

func getRecord[T any, P interface {
	*T
	record
}](ctx context.Context, s store.DocumentStore, collection, id string) (*T, error) {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decode[T, P](doc)
}

func findRecords[T any, P interface {
	*T
	record
}](ctx context.Context, s store.DocumentStore, collection string, filters ...store.Filter) ([]*T, error) {
	docs, err := s.Find(ctx, collection, filters...)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		v, err := decode[T, P](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// missingRef is the one issue reported for a reference the caller cannot
// use. Absent ids and ids owned by another user are indistinguishable.
func missingRef(field string) error {
	return invalid(field, "not found")
}

func updateRecord(ctx context.Context, s store.DocumentStore, collection, id string, fields map[string]any) error {
	if err := s.Update(ctx, collection, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func newID() string {
	return uuid.New().String()
}

// ref normalizes an optional reference: nil and blank both mean none.
func ref(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}

// optionalTime parses an optional timestamp; nil and blank both mean none.
func optionalTime(field string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := dto.ParseTime(*s)
	if err != nil {
		return nil, invalid(field, "must be an ISO-8601 date or date-time")
	}
	return &t, nil
}

func colorOrDefault(c string) string {
	if c == "" {
		return DefaultColor
	}
	return c
}

func requireText(is *issues, field, value string, max int) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		is.add(field, "is required")
	case len([]rune(value)) > max:
		is.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return value
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
