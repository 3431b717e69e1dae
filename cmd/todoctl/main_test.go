package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apphttp "todo_webapp/internal/http"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	todos := service.NewTodoService(repository.NewMemoryTodoRepository(nil, nil))
	srv := httptest.NewServer(apphttp.NewEngine(todos, apphttp.RouteConfig{
		Version:       "test",
		StoreDriver:   "memory",
		APIRateWindow: time.Minute,
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--server", url}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTodoctl_Workflow(t *testing.T) {
	url := startServer(t)

	out, err := execute(t, url, "list")
	require.NoError(t, err)
	require.Contains(t, out, "No todos yet.")

	out, err = execute(t, url, "add", "Buy", "milk")
	require.NoError(t, err)
	require.Equal(t, "created #1 Buy milk\n", out)

	out, err = execute(t, url, "done", "1")
	require.NoError(t, err)
	require.Equal(t, "[x] #1 Buy milk\n", out)

	out, err = execute(t, url, "ls")
	require.NoError(t, err)
	require.Contains(t, out, "   1 [x] Buy milk")
	require.Contains(t, out, "All tasks completed! Great job!")

	out, err = execute(t, url, "undone", "1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "[ ] #1"))

	_, err = execute(t, url, "rm", "1")
	require.NoError(t, err)
	// deleting again still succeeds
	_, err = execute(t, url, "rm", "1")
	require.NoError(t, err)
}

func TestTodoctl_Errors(t *testing.T) {
	url := startServer(t)

	_, err := execute(t, url, "done", "42")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")

	_, err = execute(t, url, "done", "abc")
	require.ErrorContains(t, err, "invalid todo id")

	_, err = execute(t, url, "add", "   ")
	require.ErrorContains(t, err, "empty")
}

func TestTodoctl_NoDefaultTimeout(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("timeout")
	require.NotNil(t, f)
	require.Equal(t, "0s", f.DefValue)
}
