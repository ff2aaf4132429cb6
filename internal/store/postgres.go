package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists collections as JSONB rows, one per collection, for
// deployments where several console processes share one store.
type Postgres struct {
	notifier
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, c Collection, out any) (bool, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx,
		`SELECT data FROM collections WHERE name = $1`, string(c)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, out)
}

func (p *Postgres) Put(ctx context.Context, c Collection, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		string(c), raw)
	if err != nil {
		return err
	}
	p.notify(c)
	return nil
}

func (p *Postgres) Delete(ctx context.Context, c Collection) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM collections WHERE name = $1`, string(c))
	if err != nil {
		return err
	}
	p.notify(c)
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
