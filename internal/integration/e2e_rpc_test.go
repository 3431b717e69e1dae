package integration

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	"todo_webapp/internal/domain"
	httpserver "todo_webapp/internal/http"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/rpc"
	"todo_webapp/internal/service"
	"todo_webapp/internal/ui"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, store repository.TodoStore) *rpc.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := httpserver.NewEngine(service.NewTodoService(store), httpserver.RouteConfig{
		Version:       "e2e",
		StoreDriver:   "test",
		APIRateWindow: time.Minute,
	})
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return rpc.NewClient(srv.URL, srv.Client())
}

func sqliteStore(t *testing.T) repository.TodoStore {
	t.Helper()
	store, closeFn, err := db.OpenStore(context.Background(), &config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "e2e.db"),
	})
	require.NoError(t, err)
	t.Cleanup(closeFn)
	return store
}

func postgresStore(t *testing.T) repository.TodoStore {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool := db.Connect(dsn)
	t.Cleanup(pool.Close)
	ctx := context.Background()
	require.NoError(t, db.ApplyMigrations(ctx, pool))
	_, err := pool.Exec(ctx, `TRUNCATE todos RESTART IDENTITY`)
	require.NoError(t, err)
	return repository.NewPostgresTodoRepository(pool)
}

func runScenario(t *testing.T, c *rpc.Client) {
	ctx := context.Background()

	todos, err := c.GetTodos(ctx)
	require.NoError(t, err)
	require.Empty(t, todos)

	created, err := c.CreateTodo(ctx, domain.CreateTodoInput{Text: "Buy milk"})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.Equal(t, "Buy milk", created.Text)
	require.False(t, created.Completed)
	require.WithinDuration(t, time.Now(), created.CreatedAt, 24*time.Hour)

	todos, err = c.GetTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, created.ID, todos[0].ID)

	updated, err := c.UpdateTodo(ctx, domain.UpdateTodoInput{ID: created.ID, Completed: true})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, created.Text, updated.Text)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	require.NoError(t, c.DeleteTodo(ctx, domain.DeleteTodoInput{ID: created.ID}))
	todos, err = c.GetTodos(ctx)
	require.NoError(t, err)
	require.Empty(t, todos)

	// update fails on a missing row, delete does not
	_, err = c.UpdateTodo(ctx, domain.UpdateTodoInput{ID: created.ID, Completed: false})
	require.True(t, rpc.IsNotFound(err), "expected NOT_FOUND, got %v", err)
	require.NoError(t, c.DeleteTodo(ctx, domain.DeleteTodoInput{ID: created.ID}))

	_, err = c.CreateTodo(ctx, domain.CreateTodoInput{Text: ""})
	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, rpc.CodeBadRequest, rpcErr.Code)

	// ids are never reused after a delete
	next, err := c.CreateTodo(ctx, domain.CreateTodoInput{Text: "Walk dog"})
	require.NoError(t, err)
	require.Greater(t, next.ID, created.ID)
}

func runBoard(t *testing.T, c *rpc.Client) {
	ctx := context.Background()
	b := ui.NewBoard(c, logger.Discard())

	require.NoError(t, b.Load(ctx))
	before := b.Counts().Total

	b.SetDraft("  Board todo  ")
	todo, err := b.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, "Board todo", todo.Text)

	require.NoError(t, b.Toggle(ctx, todo.ID))
	require.NoError(t, b.Load(ctx))
	c2 := b.Counts()
	require.Equal(t, before+1, c2.Total)
	require.GreaterOrEqual(t, c2.Completed, 1)

	require.NoError(t, b.Delete(ctx, todo.ID))
	require.Equal(t, before, b.Counts().Total)
}

func TestE2E_RPC_SQLite(t *testing.T) {
	c := startServer(t, sqliteStore(t))
	runScenario(t, c)
	runBoard(t, c)
}

func TestE2E_RPC_Postgres(t *testing.T) {
	c := startServer(t, postgresStore(t))
	runScenario(t, c)
	runBoard(t, c)
}

func TestE2E_RPC_Memory(t *testing.T) {
	c := startServer(t, repository.NewMemoryTodoRepository(nil, nil))
	runScenario(t, c)
	runBoard(t, c)
}
