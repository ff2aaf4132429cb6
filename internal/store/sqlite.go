package store

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"
)

// SQLite persists collections as rows of a single table in a local database
// file. Pure-Go driver, so the binary stays CGO-free.
type SQLite struct {
	notifier
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The store is synchronous and single-writer.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, c Collection, out any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, string(c)).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, out)
}

func (s *SQLite) Put(ctx context.Context, c Collection, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(c), raw)
	if err != nil {
		return err
	}
	s.notify(c)
	return nil
}

func (s *SQLite) Delete(ctx context.Context, c Collection) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM collections WHERE name = ?`, string(c))
	if err != nil {
		return err
	}
	s.notify(c)
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLite) Close() error { return s.db.Close() }
