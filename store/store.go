// Package store is the document store the planner persists to. A document
// store holds named collections of documents keyed by string id; the
// backends are Firestore, MongoDB and an embedded SQLite table of JSON
// documents.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
)

// Filter is an equality condition on a top-level field. A nil Value matches
// documents whose field is null or missing.
type Filter struct {
	Field string
	Value any
}

func Eq(field string, value any) Filter {
	if p, ok := value.(*string); ok {
		if p == nil {
			return Filter{Field: field}
		}
		value = *p
	}
	return Filter{Field: field, Value: value}
}

// Document is a single stored document.
type Document interface {
	ID() string
	// DataTo decodes the document into the struct pointed to by dst.
	DataTo(dst any) error
}

// DocumentStore is implemented by every backend.
//
// Find returns documents in no particular order. Update patches only the
// named top-level fields and returns ErrNotFound when the document is
// absent. Create returns ErrAlreadyExists when the id is taken.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection, id string, data any) error
	Set(ctx context.Context, collection, id string, data any) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Close() error
}
