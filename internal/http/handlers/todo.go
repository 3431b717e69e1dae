package handlers

import (
	"todo_webapp/internal/domain"
	"todo_webapp/internal/rpc"

	"github.com/gin-gonic/gin"
)

// GetTodos handles the getTodos query
func (h *Handler) GetTodos(c *gin.Context) {
	todos, err := h.Todos.GetTodos(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, todos)
}

// CreateTodo handles the createTodo mutation
func (h *Handler) CreateTodo(c *gin.Context) {
	var req struct {
		Text *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		abort(c, rpc.CodeBadRequest, "text is required")
		return
	}

	todo, err := h.Todos.CreateTodo(c.Request.Context(), domain.CreateTodoInput{Text: *req.Text})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, todo)
}

// UpdateTodo handles the updateTodo mutation
func (h *Handler) UpdateTodo(c *gin.Context) {
	var req struct {
		ID        *int64 `json:"id"`
		Completed *bool  `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil || req.Completed == nil {
		abort(c, rpc.CodeBadRequest, "id and completed are required")
		return
	}

	todo, err := h.Todos.UpdateTodo(c.Request.Context(), domain.UpdateTodoInput{ID: *req.ID, Completed: *req.Completed})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, todo)
}

// DeleteTodo handles the deleteTodo mutation. Unknown ids succeed.
func (h *Handler) DeleteTodo(c *gin.Context) {
	var req struct {
		ID *int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		abort(c, rpc.CodeBadRequest, "id is required")
		return
	}

	if err := h.Todos.DeleteTodo(c.Request.Context(), domain.DeleteTodoInput{ID: *req.ID}); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil)
}

// NotFound answers unknown procedures
func (h *Handler) NotFound(c *gin.Context) {
	abort(c, rpc.CodeNotFound, "no procedure at "+c.Request.URL.Path)
}
