package repository

import (
	"context"
	"errors"
	"testing"

	"todo_webapp/internal/domain"

	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every TodoStore must share.
// newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) TodoStore) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		s := newStore(t)
		todo := &domain.Todo{Text: "Buy milk"}
		require.NoError(t, s.Create(ctx, todo))

		require.NotZero(t, todo.ID)
		require.Equal(t, "Buy milk", todo.Text)
		require.False(t, todo.Completed)
		require.False(t, todo.CreatedAt.IsZero())

		other := &domain.Todo{Text: "Walk dog"}
		require.NoError(t, s.Create(ctx, other))
		require.NotEqual(t, todo.ID, other.ID)
	})

	t.Run("list empty", func(t *testing.T) {
		s := newStore(t)
		todos, err := s.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, todos)
		require.Empty(t, todos)
	})

	t.Run("list returns created", func(t *testing.T) {
		s := newStore(t)
		texts := []string{"one", "two", "three"}
		created := map[int64]string{}
		for _, text := range texts {
			todo := &domain.Todo{Text: text}
			require.NoError(t, s.Create(ctx, todo))
			created[todo.ID] = text
		}

		todos, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, todos, len(texts))
		for _, todo := range todos {
			require.Equal(t, created[todo.ID], todo.Text)
			require.False(t, todo.Completed)
		}
	})

	t.Run("set completed", func(t *testing.T) {
		s := newStore(t)
		todo := &domain.Todo{Text: "Test todo"}
		require.NoError(t, s.Create(ctx, todo))

		updated, err := s.SetCompleted(ctx, todo.ID, true)
		require.NoError(t, err)
		require.Equal(t, todo.ID, updated.ID)
		require.Equal(t, "Test todo", updated.Text)
		require.True(t, updated.Completed)
		require.True(t, todo.CreatedAt.Equal(updated.CreatedAt))

		todos, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		require.True(t, todos[0].Completed)

		reverted, err := s.SetCompleted(ctx, todo.ID, false)
		require.NoError(t, err)
		require.False(t, reverted.Completed)
		require.Equal(t, "Test todo", reverted.Text)
		require.True(t, todo.CreatedAt.Equal(reverted.CreatedAt))
	})

	t.Run("set completed missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.SetCompleted(ctx, 999, true)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.Contains(t, err.Error(), "not found")

		todos, err := s.List(ctx)
		require.NoError(t, err)
		require.Empty(t, todos)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		first := &domain.Todo{Text: "First todo"}
		second := &domain.Todo{Text: "Second todo"}
		require.NoError(t, s.Create(ctx, first))
		require.NoError(t, s.Create(ctx, second))
		_, err := s.SetCompleted(ctx, second.ID, true)
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, first.ID))

		todos, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		require.Equal(t, second.ID, todos[0].ID)
		require.Equal(t, "Second todo", todos[0].Text)
		require.True(t, todos[0].Completed)
	})

	t.Run("delete missing", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Delete(ctx, 999))

		todos, err := s.List(ctx)
		require.NoError(t, err)
		require.Empty(t, todos)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(ctx))
	})
}
