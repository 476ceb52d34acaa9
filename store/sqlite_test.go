package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	UserID    string    `json:"userId"`
	ProjectID *string   `json:"projectId"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, s.Create(ctx, Tasks, "t1", testDoc{UserID: "u1", Title: "write", CreatedAt: created}))

	doc, err := s.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", doc.ID())

	var got testDoc
	require.NoError(t, doc.DataTo(&got))
	assert.Equal(t, "write", got.Title)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Nil(t, got.ProjectID)
}

func TestSQLiteStoreCreateDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, UserEmails, "a@example.com", map[string]string{"userId": "u1"}))
	err := s.Create(ctx, UserEmails, "a@example.com", map[string]string{"userId": "u2"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Same id in another collection is a different document.
	assert.NoError(t, s.Create(ctx, Users, "a@example.com", map[string]string{"name": "x"}))
}

func TestSQLiteStoreGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), Tasks, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreUpdatePatchesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, Tasks, "t1", testDoc{UserID: "u1", Title: "old"}))

	project := "p1"
	require.NoError(t, s.Update(ctx, Tasks, "t1", map[string]any{"title": "new", "projectId": &project, "done": true}))

	doc, err := s.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	var got testDoc
	require.NoError(t, doc.DataTo(&got))
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "u1", got.UserID)
	require.NotNil(t, got.ProjectID)
	assert.Equal(t, "p1", *got.ProjectID)
	assert.True(t, got.Done)

	assert.ErrorIs(t, s.Update(ctx, Tasks, "missing", map[string]any{"title": "x"}), ErrNotFound)
}

func TestSQLiteStoreFindFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := "p1"

	require.NoError(t, s.Create(ctx, Tasks, "a", testDoc{UserID: "u1", ProjectID: &p}))
	require.NoError(t, s.Create(ctx, Tasks, "b", testDoc{UserID: "u1", Done: true}))
	require.NoError(t, s.Create(ctx, Tasks, "c", testDoc{UserID: "u2"}))
	require.NoError(t, s.Create(ctx, Notes, "d", testDoc{UserID: "u1"}))

	docs, err := s.Find(ctx, Tasks, Eq("userId", "u1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(docs))

	docs, err = s.Find(ctx, Tasks, Eq("userId", "u1"), Eq("projectId", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(docs))

	var nilProject *string
	docs, err = s.Find(ctx, Tasks, Eq("projectId", nilProject))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(docs))

	docs, err = s.Find(ctx, Tasks, Eq("done", true))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(docs))

	_, err = s.Find(ctx, Tasks, Eq("userId') OR 1=1 --", "x"))
	assert.Error(t, err)
}

func TestSQLiteStoreSetAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, Notes, "n1", testDoc{Title: "v1"}))
	require.NoError(t, s.Set(ctx, Notes, "n1", testDoc{Title: "v2"}))

	doc, err := s.Get(ctx, Notes, "n1")
	require.NoError(t, err)
	var got testDoc
	require.NoError(t, doc.DataTo(&got))
	assert.Equal(t, "v2", got.Title)

	require.NoError(t, s.Delete(ctx, Notes, "n1"))
	_, err = s.Get(ctx, Notes, "n1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing document is not an error.
	assert.NoError(t, s.Delete(ctx, Notes, "n1"))
}

func ids(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID())
	}
	return out
}
