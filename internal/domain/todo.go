package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Todo struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateTodoInput struct {
	Text string `json:"text"`
}

type UpdateTodoInput struct {
	ID        int64 `json:"id"`
	Completed bool  `json:"completed"`
}

type DeleteTodoInput struct {
	ID int64 `json:"id"`
}

// Validate rejects an empty text
func (in CreateTodoInput) Validate() error {
	if in.Text == "" {
		return fmt.Errorf("%w: text must not be empty", ErrInvalidInput)
	}
	return nil
}

func (in UpdateTodoInput) Validate() error {
	return validateID(in.ID)
}

func (in DeleteTodoInput) Validate() error {
	return validateID(in.ID)
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", ErrInvalidInput)
	}
	return nil
}

// NotFoundError is returned when an update targets a todo that does not exist.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo with id %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
