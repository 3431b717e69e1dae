package db

import (
	"context"
	"fmt"

	"todo_webapp/internal/logger"
	"todo_webapp/internal/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
)

// poolConfig parses dsn and pins the session time zone to UTC. created_at is a
// TIMESTAMP without zone filled by NOW(), so the session zone decides its wall clock.
func poolConfig(dsn string) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	return cfg, nil
}

func Connect(dsn string) *pgxpool.Pool {
	cfg, err := poolConfig(dsn)
	if err != nil {
		logger.Fatal("invalid database url", "error", err)
	}

	db, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := db.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return db
}

// ApplyMigrations runs every embedded postgres migration. The scripts are idempotent.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migs, err := migrations.Load(migrations.Postgres)
	if err != nil {
		return err
	}
	for _, m := range migs {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		logger.Debug("migration applied", "name", m.Name)
	}
	return nil
}
