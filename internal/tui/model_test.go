package tui

import (
	"context"
	"strings"
	"testing"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"
	"todo_webapp/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T) (Model, *service.TodoService) {
	t.Helper()
	svc := service.NewTodoService(repository.NewMemoryTodoRepository(nil, nil))
	return New(ui.NewBoard(svc, logger.Discard())), svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step feeds msg to the model and, when a board action is returned, runs it and
// feeds its result back. Commands from the text input (cursor blink) are dropped.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil || m.adding {
		return m
	}
	if done, ok := cmd().(doneMsg); ok {
		next, _ = m.Update(done)
		m = next.(Model)
	}
	return m
}

func TestModel_AddToggleDelete(t *testing.T) {
	m, svc := newModel(t)
	ctx := context.Background()

	m = step(t, m, runes("a"))
	if !m.adding {
		t.Fatal("expected add mode after 'a'")
	}
	for _, r := range "Buy milk" {
		m = step(t, m, runes(string(r)))
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.adding || m.busy {
		t.Fatalf("expected list mode after submit, adding=%v busy=%v", m.adding, m.busy)
	}

	todos, _ := svc.GetTodos(ctx)
	if len(todos) != 1 || todos[0].Text != "Buy milk" {
		t.Fatalf("expected todo to be created, got %+v", todos)
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Fatal("expected view to list the new todo")
	}

	m = step(t, m, runes(" "))
	todos, _ = svc.GetTodos(ctx)
	if !todos[0].Completed {
		t.Fatal("expected space to complete the todo")
	}
	if !strings.Contains(m.View(), "All tasks completed! Great job!") {
		t.Fatal("expected completion summary")
	}

	m = step(t, m, runes("d"))
	todos, _ = svc.GetTodos(ctx)
	if len(todos) != 0 {
		t.Fatalf("expected todo to be deleted, got %+v", todos)
	}
	if !strings.Contains(m.View(), "No todos yet") {
		t.Fatal("expected empty state")
	}
}

func TestModel_BlankDraftIsIgnored(t *testing.T) {
	m, svc := newModel(t)

	m = step(t, m, runes("a"))
	m = step(t, m, runes(" "))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.adding {
		t.Fatal("expected to stay in add mode for a blank draft")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.adding {
		t.Fatal("expected esc to leave add mode")
	}

	todos, _ := svc.GetTodos(context.Background())
	if len(todos) != 0 {
		t.Fatalf("expected no todos, got %d", len(todos))
	}
}

func TestModel_CursorAndReload(t *testing.T) {
	m, svc := newModel(t)
	ctx := context.Background()
	for _, text := range []string{"one", "two"} {
		if _, err := svc.CreateTodo(ctx, domain.CreateTodoInput{Text: text}); err != nil {
			t.Fatal(err)
		}
	}

	m = step(t, m, runes("r"))
	if len(m.board.Todos()) != 2 {
		t.Fatalf("expected reload to fetch 2 todos, got %d", len(m.board.Todos()))
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("expected cursor clamped at 1, got %d", m.cursor)
	}

	m = step(t, m, runes("x"))
	if m.cursor != 0 {
		t.Fatalf("expected cursor to move up after deleting the last row, got %d", m.cursor)
	}
	todos := m.board.Todos()
	if len(todos) != 1 || todos[0].Text != "one" {
		t.Fatalf("unexpected todos %+v", todos)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

// deadlineAPI records whether the calls it receives carry a deadline
type deadlineAPI struct {
	ui.API
	hadDeadline bool
}

func (d *deadlineAPI) GetTodos(ctx context.Context) ([]*domain.Todo, error) {
	_, d.hadDeadline = ctx.Deadline()
	return []*domain.Todo{}, nil
}

func TestModel_CallsHaveNoDeadline(t *testing.T) {
	api := &deadlineAPI{}
	m := New(ui.NewBoard(api, logger.Discard()))

	msg := m.Init()()
	if done, ok := msg.(doneMsg); !ok || done.err != nil {
		t.Fatalf("unexpected init result %#v", msg)
	}
	if api.hadDeadline {
		t.Fatal("expected load to wait for the server without a deadline")
	}
}
