// Package tui is a terminal front end for the todo list built on Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"todo_webapp/internal/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() string {
	parts := make([]string, 0, 6)
	for _, b := range []key.Binding{k.Add, k.Toggle, k.Delete, k.Reload, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return mutedStyle.Render(strings.Join(parts, " • "))
}

// doneMsg reports the outcome of a board action
type doneMsg struct {
	action string
	err    error
}

type Model struct {
	board  *ui.Board
	keys   keyMap
	ti     textinput.Model
	cursor int
	adding bool
	busy   bool
	errMsg string
}

func New(board *ui.Board) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 500
	return Model{board: board, keys: defaultKeys(), ti: ti}
}

// Run starts the program on the terminal and blocks until the user quits
func Run(board *ui.Board) error {
	_, err := tea.NewProgram(New(board), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.run("load", m.board.Load)
}

func (m Model) run(action string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		// calls wait for the server; the user can always quit
		return doneMsg{action: action, err: fn(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.busy = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.ti.SetValue("")
		m.ti.Blur()
		m.board.SetDraft("")
		return m, nil
	case tea.KeyEnter:
		m.board.SetDraft(m.ti.Value())
		if !m.board.CanSubmit() {
			return m, nil
		}
		m.adding = false
		m.busy = true
		m.ti.SetValue("")
		m.ti.Blur()
		return m, m.run("create", func(ctx context.Context) error {
			_, err := m.board.Submit(ctx)
			return err
		})
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.board.Todos())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.ti.SetValue("")
		return m, m.ti.Focus()
	case key.Matches(msg, m.keys.Reload):
		m.busy = true
		return m, m.run("load", m.board.Load)
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selected(); ok {
			m.busy = true
			return m, m.run("update", func(ctx context.Context) error { return m.board.Toggle(ctx, id) })
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selected(); ok {
			m.busy = true
			return m, m.run("delete", func(ctx context.Context) error { return m.board.Delete(ctx, id) })
		}
	}
	return m, nil
}

func (m Model) selected() (int64, bool) {
	todos := m.board.Todos()
	if m.cursor < 0 || m.cursor >= len(todos) {
		return 0, false
	}
	return todos[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.board.Todos())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	c := m.board.Counts()
	fmt.Fprintf(&b, "%s   %s %d  %s %d  %s %d\n\n",
		titleStyle.Render("Todo List"),
		mutedStyle.Render("Total"), c.Total,
		successStyle.Render("✔"), c.Completed,
		pendingStyle.Render("•"), c.Remaining,
	)

	todos := m.board.Todos()
	if len(todos) == 0 {
		if m.board.Loading() {
			b.WriteString(mutedStyle.Render("Loading..."))
		} else {
			b.WriteString(mutedStyle.Render("No todos yet. Add one above!"))
		}
		b.WriteString("\n")
	}
	for i, t := range todos {
		box, text := mutedStyle.Render(boxUnchecked), t.Text
		if t.Completed {
			box, text = successStyle.Render(boxChecked), doneStyle.Render(t.Text)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, box, text)
	}

	if s := m.board.Summary(); s != "" {
		b.WriteString("\n" + s + "\n")
	}
	if m.adding {
		b.WriteString("\n" + panelStyle.Render("Add todo\n"+m.ti.View()) + "\n")
	}
	if m.busy {
		b.WriteString("\n" + mutedStyle.Render("Working...") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.keys.help())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
