package repository

import (
	"context"
	"errors"

	"todo_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTodoRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTodoRepository(db *pgxpool.Pool) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO todos (text, completed) VALUES ($1, $2) RETURNING id, created_at`,
		t.Text, t.Completed,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *PostgresTodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx, `SELECT id, text, completed, created_at FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *PostgresTodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Todo, error) {
	var t domain.Todo
	err := r.db.QueryRow(ctx,
		`UPDATE todos SET completed = $1 WHERE id = $2 RETURNING id, text, completed, created_at`,
		completed, id,
	).Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	return err
}

func (r *PostgresTodoRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
