// Package rpc defines the typed procedure boundary shared by the HTTP server and its
// clients: procedure names, the JSON envelopes and error codes.
//
// A procedure call is an HTTP request to <base>/trpc/<procedure>. Queries use GET,
// mutations POST a JSON input. Responses look like
//
//	{"result":{"data":<output>}}
//	{"error":{"code":"NOT_FOUND","message":"todo with id 3 not found"}}
package rpc

import (
	"errors"
	"net/http"
)

const PathPrefix = "/trpc"

// Procedures
const (
	GetTodos   = "getTodos"
	CreateTodo = "createTodo"
	UpdateTodo = "updateTodo"
	DeleteTodo = "deleteTodo"
)

// Error codes
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

type Response[T any] struct {
	Result *Result[T] `json:"result,omitempty"`
	Error  *Error     `json:"error,omitempty"`
}

type Result[T any] struct {
	Data T `json:"data"`
}

// Error is a failed procedure call
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Status is the HTTP status the error travelled with, set by the client
	Status int `json:"-"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Success wraps data in a result envelope
func Success[T any](data T) Response[T] {
	return Response[T]{Result: &Result[T]{Data: data}}
}

// Failure builds an error envelope
func Failure(code, message string) Response[any] {
	return Response[any]{Error: &Error{Code: code, Message: message}}
}

// HTTPStatus maps an error code to the status it is served with
func HTTPStatus(code string) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// CodeFromStatus is the inverse of HTTPStatus, used when a response has no envelope
func CodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeTooManyRequests
	default:
		return CodeInternal
	}
}

// IsNotFound reports whether err is a NOT_FOUND procedure error
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNotFound
}
