package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"todo_webapp/internal/domain"
)

// Client calls the todo procedures of a running server
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the server at baseURL (e.g. http://127.0.0.1:8080).
// A nil hc means http.DefaultClient.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

func (c *Client) GetTodos(ctx context.Context) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	if err := c.call(ctx, http.MethodGet, GetTodos, nil, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	return todos, nil
}

func (c *Client) CreateTodo(ctx context.Context, in domain.CreateTodoInput) (*domain.Todo, error) {
	var t domain.Todo
	if err := c.call(ctx, http.MethodPost, CreateTodo, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTodo(ctx context.Context, in domain.UpdateTodoInput) (*domain.Todo, error) {
	var t domain.Todo
	if err := c.call(ctx, http.MethodPost, UpdateTodo, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTodo(ctx context.Context, in domain.DeleteTodoInput) error {
	return c.call(ctx, http.MethodPost, DeleteTodo, in, nil)
}

func (c *Client) call(ctx context.Context, method, proc string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode input: %w", proc, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+PathPrefix+"/"+proc, body)
	if err != nil {
		return fmt.Errorf("%s: %w", proc, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", proc, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", proc, err)
	}

	if res.StatusCode != http.StatusOK {
		var env Response[json.RawMessage]
		if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
			env.Error.Status = res.StatusCode
			return env.Error
		}
		return &Error{
			Code:    CodeFromStatus(res.StatusCode),
			Message: strings.TrimSpace(http.StatusText(res.StatusCode)),
			Status:  res.StatusCode,
		}
	}

	var env Response[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s: decode response: %w", proc, err)
	}
	if env.Error != nil {
		env.Error.Status = res.StatusCode
		return env.Error
	}
	if out == nil || env.Result == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", proc, err)
	}
	return nil
}
