package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every collection in one table of JSON documents.
// Secondary indexes are expression indexes over json_extract.
type SQLiteStore struct {
	db *sqlx.DB
}

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewSQLiteStore opens (or creates) the database at dsn and creates the
// documents table and indexes.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// An in-memory database lives on one connection only.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	const table = `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		)`
	if _, err := s.db.Exec(table); err != nil {
		return fmt.Errorf("creating documents table: %w", err)
	}

	collections := make([]string, 0, len(Indexes))
	for c := range Indexes {
		collections = append(collections, c)
	}
	sort.Strings(collections)

	for _, collection := range collections {
		for _, field := range Indexes[collection] {
			stmt := fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS idx_%s_%s ON documents (collection, json_extract(data, '$.%s'))",
				strings.ToLower(collection), strings.ToLower(field), field,
			)
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating index %s.%s: %w", collection, field, err)
			}
		}
	}
	return nil
}

type documentRow struct {
	ID   string `db:"id"`
	Data string `db:"data"`
}

type sqliteDoc struct {
	id   string
	data []byte
}

func (d sqliteDoc) ID() string { return d.id }

func (d sqliteDoc) DataTo(dst any) error { return json.Unmarshal(d.data, dst) }

func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var row documentRow
	err := s.db.GetContext(ctx, &row,
		"SELECT id, data FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return sqliteDoc{id: row.ID, data: []byte(row.Data)}, nil
}

func (s *SQLiteStore) Create(ctx context.Context, collection, id string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO NOTHING`,
		collection, id, string(b),
	)
	if err != nil {
		return fmt.Errorf("create %s/%s: %w", collection, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *SQLiteStore) Set(ctx context.Context, collection, id string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data`,
		collection, id, string(b),
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.GetContext(ctx, &current,
		"SELECT data FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(current), &doc); err != nil {
		return fmt.Errorf("decoding %s/%s: %w", collection, id, err)
	}
	for field, value := range fields {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding field %s: %w", field, err)
		}
		doc[field] = b
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE documents SET data = ? WHERE collection = ? AND id = ?",
		string(b), collection, id,
	); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLiteStore) Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	conditions := []string{"collection = ?"}
	args := []interface{}{collection}

	for _, f := range filters {
		if !fieldName.MatchString(f.Field) {
			return nil, fmt.Errorf("query %s: invalid field %q", collection, f.Field)
		}
		expr := fmt.Sprintf("json_extract(data, '$.%s')", f.Field)
		switch v := f.Value.(type) {
		case nil:
			conditions = append(conditions, expr+" IS NULL")
		case bool:
			conditions = append(conditions, expr+" = ?")
			args = append(args, boolToInt(v))
		default:
			conditions = append(conditions, expr+" = ?")
			args = append(args, v)
		}
	}

	query := "SELECT id, data FROM documents WHERE " + strings.Join(conditions, " AND ") + " ORDER BY rowid"

	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, sqliteDoc{id: r.ID, data: []byte(r.Data)})
	}
	return docs, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// boolToInt converts a boolean to 0 or 1, matching json_extract's encoding.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
