package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps each collection as a Firestore top-level collection.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

type firestoreDoc struct {
	snap *firestore.DocumentSnapshot
}

func (d firestoreDoc) ID() string { return d.snap.Ref.ID }

func (d firestoreDoc) DataTo(dst any) error { return d.snap.DataTo(dst) }

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return firestoreDoc{snap: snap}, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection, id string, data any) error {
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, data)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	var updates []firestore.Update
	for field, value := range fields {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	query := s.client.Collection(collection).Query
	for _, f := range filters {
		// "==" nil becomes an IS_NULL filter.
		query = query.Where(f.Field, "==", f.Value)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", collection, err)
		}
		docs = append(docs, firestoreDoc{snap: snap})
	}
	return docs, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
