package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todo_webapp/internal/domain"
)

// created_at is stored as "2006-01-02 15:04:05.000" UTC text; RETURNING columns may
// come back untyped, so both forms are accepted.
type sqliteTime struct {
	t *time.Time
}

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

func (s sqliteTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	}
	return fmt.Errorf("created_at: unsupported type %T", src)
}

func (s sqliteTime) parse(v string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("created_at: cannot parse %q", v)
}

type SQLiteTodoRepository struct {
	db *sql.DB
}

func NewSQLiteTodoRepository(db *sql.DB) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{db: db}
}

func (r *SQLiteTodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO todos (text, completed) VALUES (?, ?) RETURNING id, created_at`,
		t.Text, t.Completed,
	).Scan(&t.ID, sqliteTime{&t.CreatedAt})
}

func (r *SQLiteTodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, text, completed, created_at FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, sqliteTime{&t.CreatedAt}); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *SQLiteTodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Todo, error) {
	var t domain.Todo
	err := r.db.QueryRowContext(ctx,
		`UPDATE todos SET completed = ? WHERE id = ? RETURNING id, text, completed, created_at`,
		completed, id,
	).Scan(&t.ID, &t.Text, &t.Completed, sqliteTime{&t.CreatedAt})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteTodoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	return err
}

func (r *SQLiteTodoRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
