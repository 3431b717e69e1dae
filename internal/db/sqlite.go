package db

import (
	"context"
	"database/sql"
	"fmt"

	"todo_webapp/internal/logger"
	"todo_webapp/internal/migrations"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the database file at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite has a single writer; one connection also keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	migs, err := migrations.Load(migrations.SQLite)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range migs {
		if _, err := db.ExecContext(ctx, m.SQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
	}

	logger.Info("sqlite database opened", "path", path)
	return db, nil
}
