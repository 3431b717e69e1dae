package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/rpc"
)

// Runs create, list, update and delete against a live server and exits non-zero on
// the first mismatch.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	server := flag.String("server", "http://127.0.0.1:"+port, "server base URL")
	flag.Parse()

	logger.Init("info", false)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := rpc.NewClient(*server, &http.Client{Timeout: 10 * time.Second})

	created, err := c.CreateTodo(ctx, domain.CreateTodoInput{Text: "Buy milk"})
	if err != nil {
		logger.Fatal("createTodo", "error", err)
	}
	if created.Text != "Buy milk" || created.Completed {
		logger.Fatal("createTodo returned unexpected todo", "todo", created)
	}
	logger.Info("created", "id", created.ID)

	if !contains(ctx, c, created.ID) {
		logger.Fatal("getTodos does not include the new todo", "id", created.ID)
	}

	updated, err := c.UpdateTodo(ctx, domain.UpdateTodoInput{ID: created.ID, Completed: true})
	if err != nil {
		logger.Fatal("updateTodo", "error", err)
	}
	if !updated.Completed || updated.Text != created.Text || !updated.CreatedAt.Equal(created.CreatedAt) {
		logger.Fatal("updateTodo returned unexpected todo", "todo", updated)
	}
	logger.Info("completed", "id", updated.ID)

	if err := c.DeleteTodo(ctx, domain.DeleteTodoInput{ID: created.ID}); err != nil {
		logger.Fatal("deleteTodo", "error", err)
	}
	if contains(ctx, c, created.ID) {
		logger.Fatal("todo still listed after delete", "id", created.ID)
	}

	_, err = c.UpdateTodo(ctx, domain.UpdateTodoInput{ID: created.ID, Completed: false})
	if !rpc.IsNotFound(err) {
		logger.Fatal("updateTodo on deleted todo should be NOT_FOUND", "error", err)
	}
	if err := c.DeleteTodo(ctx, domain.DeleteTodoInput{ID: created.ID}); err != nil {
		logger.Fatal("second deleteTodo should succeed", "error", err)
	}

	logger.Info("smoke test passed", "server", *server)
}

func contains(ctx context.Context, c *rpc.Client, id int64) bool {
	todos, err := c.GetTodos(ctx)
	if err != nil {
		logger.Fatal("getTodos", "error", err)
	}
	for _, t := range todos {
		if t.ID == id {
			return true
		}
	}
	return false
}
