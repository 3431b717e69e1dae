package service

import (
	"context"
	"errors"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"
)

// TodoService implements the four todo operations. Each one issues a single store call;
// store failures are logged here and returned unchanged.
type TodoService struct {
	store repository.TodoStore
}

func NewTodoService(store repository.TodoStore) *TodoService {
	return &TodoService{store: store}
}

// CreateTodo inserts a new, not completed todo and returns it
func (s *TodoService) CreateTodo(ctx context.Context, in domain.CreateTodoInput) (*domain.Todo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t := &domain.Todo{Text: in.Text, Completed: false}
	if err := s.store.Create(ctx, t); err != nil {
		logger.WithContext(ctx).Error("todo creation failed", "error", err)
		return nil, err
	}
	return t, nil
}

// GetTodos returns every todo
func (s *TodoService) GetTodos(ctx context.Context) ([]*domain.Todo, error) {
	todos, err := s.store.List(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("fetching todos failed", "error", err)
		return nil, err
	}
	return todos, nil
}

// UpdateTodo sets completed on an existing todo. Unknown ids fail with *domain.NotFoundError.
func (s *TodoService) UpdateTodo(ctx context.Context, in domain.UpdateTodoInput) (*domain.Todo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t, err := s.store.SetCompleted(ctx, in.ID, in.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.WithContext(ctx).Warn("todo update on missing id", "id", in.ID)
		} else {
			logger.WithContext(ctx).Error("todo update failed", "id", in.ID, "error", err)
		}
		return nil, err
	}
	return t, nil
}

// DeleteTodo removes a todo. Deleting an unknown id succeeds.
func (s *TodoService) DeleteTodo(ctx context.Context, in domain.DeleteTodoInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, in.ID); err != nil {
		logger.WithContext(ctx).Error("todo deletion failed", "id", in.ID, "error", err)
		return err
	}
	return nil
}

// Ping reports whether the store is reachable
func (s *TodoService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
