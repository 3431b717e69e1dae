package main

import (
	"context"
	"flag"
	"fmt"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/migrations"
)

// Lists the embedded migrations for the configured driver; with -apply runs them.
func main() {
	apply := flag.Bool("apply", false, "apply migrations")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	ctx := context.Background()

	var dialect string
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		dialect = migrations.Postgres
	case config.DriverSQLite:
		dialect = migrations.SQLite
	default:
		logger.Fatal("store driver has no migrations", "driver", cfg.StoreDriver)
	}

	migs, err := migrations.Load(dialect)
	if err != nil {
		logger.Fatal("load migrations", "error", err)
	}
	if !*apply {
		for _, m := range migs {
			fmt.Println(m.Name)
		}
		return
	}

	if dialect == migrations.Postgres {
		pool := db.Connect(cfg.DatabaseURL)
		defer pool.Close()
		if err := db.ApplyMigrations(ctx, pool); err != nil {
			logger.Fatal("apply migrations", "error", err)
		}
	} else {
		// opening the database applies the schema
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Fatal("apply migrations", "error", err)
		}
		defer sqlDB.Close()
	}
	for _, m := range migs {
		fmt.Printf("applied %s\n", m.Name)
	}
}
