package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"rms-backend/internal/config"
	"rms-backend/internal/store"
)

// Open connects the configured store backend with fallback:
// postgres -> sqlite -> memory. The console keeps working on a degraded
// backend rather than refusing to start.
func Open(cfg *config.Config) (store.Store, string) {
	if cfg.Store.Driver == "postgres" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			cfg.Store.User, cfg.Store.Password, cfg.Store.Host, cfg.Store.Port, cfg.Store.Name)
		pg, err := store.OpenPostgres(ctx, dsn)
		if err == nil {
			return pg, fmt.Sprintf("postgres (%s:%d/%s)", cfg.Store.Host, cfg.Store.Port, cfg.Store.Name)
		}
		log.Printf("[Store] Postgres unavailable: %v, falling back to sqlite", err)
	}

	if cfg.Store.Driver != "memory" {
		sq, err := store.OpenSQLite(cfg.Store.Path)
		if err == nil {
			return sq, fmt.Sprintf("sqlite (%s)", cfg.Store.Path)
		}
		log.Printf("[Store] SQLite unavailable: %v, falling back to memory", err)
	}

	return store.NewMemory(), "memory (volatile)"
}
