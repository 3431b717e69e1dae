package main

import (
	"context"
	"flag"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/service"
)

var samples = []string{
	"Buy milk",
	"Walk the dog",
	"Read a chapter of a book",
	"Water the plants",
}

func main() {
	force := flag.Bool("force", false, "insert samples even if todos exist")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	ctx := context.Background()

	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open store", "error", err)
	}
	defer closeStore()

	todos := service.NewTodoService(store)

	existing, err := todos.GetTodos(ctx)
	if err != nil {
		logger.Fatal("list todos failed", "error", err)
	}
	if len(existing) > 0 && !*force {
		logger.Info("todos already present, nothing to seed", "count", len(existing))
		return
	}

	for i, text := range samples {
		t, err := todos.CreateTodo(ctx, domain.CreateTodoInput{Text: text})
		if err != nil {
			logger.Fatal("create todo failed", "text", text, "error", err)
		}
		// every other sample starts completed
		if i%2 == 1 {
			if _, err := todos.UpdateTodo(ctx, domain.UpdateTodoInput{ID: t.ID, Completed: true}); err != nil {
				logger.Fatal("update todo failed", "id", t.ID, "error", err)
			}
		}
		logger.Info("todo created", "id", t.ID, "text", t.Text)
	}
}
