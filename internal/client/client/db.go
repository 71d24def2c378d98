// Package client wires the local sqlite database used for durable
// client-side state.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/shelfhub/shelfhub/internal/client/migrations"
	"github.com/shelfhub/shelfhub/internal/client/repositories/localdata"

	_ "modernc.org/sqlite"
)

// Repositories groups the repositories backed by the local database.
type Repositories struct {
	LocalData localdata.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn,
// applies migrations, and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		LocalData: localdata.NewSQLiteRepository(db),
	}, nil
}
