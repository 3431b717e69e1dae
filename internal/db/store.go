package db

import (
	"context"
	"fmt"

	"todo_webapp/internal/config"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"
)

// OpenStore builds the todo store selected by cfg.StoreDriver. The returned
// func releases the underlying connection.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.TodoStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool := Connect(cfg.DatabaseURL)
		if err := ApplyMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repository.NewPostgresTodoRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		sqlDB, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLiteTodoRepository(sqlDB), func() { sqlDB.Close() }, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store, todos are lost on restart")
		return repository.NewMemoryTodoRepository(nil, nil), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
