package repository

import (
	"context"
	"sync/atomic"
	"time"

	"todo_webapp/internal/domain"
)

// TodoStore is the todos table. Every method is a single statement.
type TodoStore interface {
	// Create inserts t with its Text and Completed and fills ID and CreatedAt.
	Create(ctx context.Context, t *domain.Todo) error
	List(ctx context.Context) ([]*domain.Todo, error)
	// SetCompleted returns *domain.NotFoundError when no row has the id.
	SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Todo, error)
	// Delete is a no-op for an unknown id.
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// Clock supplies creation timestamps to stores that do not generate their own.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies primary keys to stores that do not generate their own.
type IDGenerator interface {
	NextID() int64
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// SequenceIDs hands out 1, 2, 3, ...
type SequenceIDs struct {
	last atomic.Int64
}

func (s *SequenceIDs) NextID() int64 { return s.last.Add(1) }
