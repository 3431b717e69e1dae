package handlers

import (
	"errors"
	"net/http"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/rpc"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Todos *service.TodoService
}

func NewHandler(todos *service.TodoService) *Handler {
	return &Handler{Todos: todos}
}

// ok writes a procedure result
func ok[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, rpc.Success(data))
}

// fail writes a procedure error. Store failures are not exposed to the caller.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		abort(c, rpc.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		abort(c, rpc.CodeNotFound, err.Error())
	default:
		_ = c.Error(err)
		abort(c, rpc.CodeInternal, "internal server error")
	}
}

func abort(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(rpc.HTTPStatus(code), rpc.Failure(code, message))
}
