package repository

import (
	"context"
	"sort"
	"sync"

	"todo_webapp/internal/domain"
)

// MemoryTodoRepository keeps todos in process memory. IDs and timestamps come from
// the injected IDGenerator and Clock.
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	todos map[int64]domain.Todo
	clock Clock
	ids   IDGenerator
}

func NewMemoryTodoRepository(clock Clock, ids IDGenerator) *MemoryTodoRepository {
	if clock == nil {
		clock = SystemClock{}
	}
	if ids == nil {
		ids = &SequenceIDs{}
	}
	return &MemoryTodoRepository{
		todos: make(map[int64]domain.Todo),
		clock: clock,
		ids:   ids,
	}
}

func (r *MemoryTodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.ids.NextID()
	t.CreatedAt = r.clock.Now()
	r.todos[t.ID] = *t
	return nil
}

func (r *MemoryTodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		t := t // per-iteration copy; module builds with go 1.21 loop semantics
		res = append(res, &t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *MemoryTodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	t.Completed = completed
	r.todos[id] = t
	return &t, nil
}

func (r *MemoryTodoRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.todos, id)
	r.mu.Unlock()
	return nil
}

func (r *MemoryTodoRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
