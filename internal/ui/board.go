// Package ui holds the client-side todo list state shared by the front ends.
//
// A Board owns the list as last fetched from the server. Each user action has one
// entry point (Load, Submit, Toggle, Delete) which makes a single remote call and
// reconciles the list with what the server returned. Nothing is changed before the
// call succeeds, so a failed call leaves the board as it was; failures are logged.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
)

var ErrNotOnBoard = errors.New("todo is not on the board")

// API is the set of todo procedures the board calls. rpc.Client and
// service.TodoService both satisfy it.
type API interface {
	GetTodos(ctx context.Context) ([]*domain.Todo, error)
	CreateTodo(ctx context.Context, in domain.CreateTodoInput) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, in domain.UpdateTodoInput) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, in domain.DeleteTodoInput) error
}

type Counts struct {
	Total     int
	Completed int
	Remaining int
}

type Board struct {
	api API
	log *slog.Logger

	mu       sync.Mutex
	todos    []domain.Todo
	draft    string
	loading  bool
	creating bool
}

// NewBoard returns an empty board. A nil log uses the default logger.
func NewBoard(api API, log *slog.Logger) *Board {
	if log == nil {
		log = logger.Get()
	}
	return &Board{api: api, log: log}
}

// Load replaces the list with the server's
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	todos, err := b.api.GetTodos(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		b.log.Error("failed to load todos", "error", err)
		return err
	}
	b.todos = b.todos[:0]
	for _, t := range todos {
		b.todos = append(b.todos, *t)
	}
	return nil
}

func (b *Board) SetDraft(s string) {
	b.mu.Lock()
	b.draft = s
	b.mu.Unlock()
}

func (b *Board) Draft() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

// CanSubmit reports whether Submit would issue a call
func (b *Board) CanSubmit() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.creating && strings.TrimSpace(b.draft) != ""
}

// Submit creates a todo from the trimmed draft. A blank draft makes no call and
// returns nil, nil.
func (b *Board) Submit(ctx context.Context) (*domain.Todo, error) {
	b.mu.Lock()
	text := strings.TrimSpace(b.draft)
	if text == "" {
		b.mu.Unlock()
		return nil, nil
	}
	b.creating = true
	b.mu.Unlock()

	todo, err := b.api.CreateTodo(ctx, domain.CreateTodoInput{Text: text})

	b.mu.Lock()
	defer b.mu.Unlock()
	b.creating = false
	if err != nil {
		b.log.Error("failed to create todo", "error", err)
		return nil, err
	}
	b.todos = append(b.todos, *todo)
	b.draft = ""
	return todo, nil
}

// Toggle flips completed on the todo with id. The entry is replaced by the server's
// record once the call succeeds.
func (b *Board) Toggle(ctx context.Context, id int64) error {
	b.mu.Lock()
	i := b.index(id)
	if i < 0 {
		b.mu.Unlock()
		return fmt.Errorf("toggle %d: %w", id, ErrNotOnBoard)
	}
	completed := b.todos[i].Completed
	b.mu.Unlock()

	updated, err := b.api.UpdateTodo(ctx, domain.UpdateTodoInput{ID: id, Completed: !completed})

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.log.Error("failed to update todo", "id", id, "error", err)
		return err
	}
	if i := b.index(id); i >= 0 {
		b.todos[i] = *updated
	}
	return nil
}

// Delete removes the todo with id once the server has deleted it
func (b *Board) Delete(ctx context.Context, id int64) error {
	if err := b.api.DeleteTodo(ctx, domain.DeleteTodoInput{ID: id}); err != nil {
		b.log.Error("failed to delete todo", "id", id, "error", err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(id); i >= 0 {
		b.todos = append(b.todos[:i], b.todos[i+1:]...)
	}
	return nil
}

// Todos returns a copy of the list
func (b *Board) Todos() []domain.Todo {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Todo, len(b.todos))
	copy(out, b.todos)
	return out
}

func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *Board) Creating() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.creating
}

// Counts is computed from the current list on every call
func (b *Board) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := Counts{Total: len(b.todos)}
	for _, t := range b.todos {
		if t.Completed {
			c.Completed++
		}
	}
	c.Remaining = c.Total - c.Completed
	return c
}

// Summary is the progress line shown under the list; empty when there are no todos
func (b *Board) Summary() string {
	c := b.Counts()
	switch {
	case c.Total == 0:
		return ""
	case c.Completed == c.Total:
		return "All tasks completed! Great job!"
	case c.Remaining == 1:
		return "Keep going! 1 task remaining."
	default:
		return fmt.Sprintf("Keep going! %d tasks remaining.", c.Remaining)
	}
}

// index must be called with mu held
func (b *Board) index(id int64) int {
	for i, t := range b.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
