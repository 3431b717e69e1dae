package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"todo_webapp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type stubIDs struct{ next []int64 }

func (s *stubIDs) NextID() int64 {
	id := s.next[0]
	s.next = s.next[1:]
	return id
}

func TestMemoryTodoRepository_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) TodoStore {
		return NewMemoryTodoRepository(nil, nil)
	})
}

func TestMemoryTodoRepository_UsesCollaborators(t *testing.T) {
	at := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	repo := NewMemoryTodoRepository(fixedClock{at}, &stubIDs{next: []int64{42, 7}})
	ctx := context.Background()

	a := &domain.Todo{Text: "a"}
	b := &domain.Todo{Text: "b"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.Equal(t, int64(42), a.ID)
	require.Equal(t, int64(7), b.ID)
	require.Equal(t, at, a.CreatedAt)

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	require.Equal(t, int64(7), todos[0].ID)
	require.Equal(t, int64(42), todos[1].ID)
}

func TestMemoryTodoRepository_ListIsACopy(t *testing.T) {
	repo := NewMemoryTodoRepository(nil, nil)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Todo{Text: "x"}))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	todos[0].Completed = true

	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.False(t, again[0].Completed)
}

func TestMemoryTodoRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryTodoRepository(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Create(ctx, &domain.Todo{Text: "x"}), context.Canceled)
	_, err := repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSequenceIDs_Concurrent(t *testing.T) {
	var ids SequenceIDs
	seen := sync.Map{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := ids.NextID()
			_, dup := seen.LoadOrStore(id, true)
			assert.False(t, dup, "duplicate id %d", id)
		}()
	}
	wg.Wait()
	require.Equal(t, int64(51), ids.NextID())
}
