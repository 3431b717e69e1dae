package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/tui"
	"todo_webapp/internal/ui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all todos",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		board := ui.NewBoard(newClient(), logger.Get())
		if err := board.Load(cmd.Context()); err != nil {
			return err
		}
		printBoard(cmd.OutOrStdout(), board)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Create a todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board := ui.NewBoard(newClient(), logger.Get())
		board.SetDraft(strings.Join(args, " "))
		if !board.CanSubmit() {
			return fmt.Errorf("todo text is empty")
		}
		todo, err := board.Submit(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created #%d %s\n", todo.ID, todo.Text)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a todo completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(cmd, args[0], true)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone [id]",
	Short: "Mark a todo not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(cmd, args[0], false)
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a todo; deleting a missing id succeeds",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := newClient().DeleteTodo(cmd.Context(), domain.DeleteTodoInput{ID: id}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted #%d\n", id)
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the alt screen owns the terminal, keep log lines out of it
		return tui.Run(ui.NewBoard(newClient(), logger.Discard()))
	},
}

func setCompleted(cmd *cobra.Command, arg string, completed bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	todo, err := newClient().UpdateTodo(cmd.Context(), domain.UpdateTodoInput{ID: id, Completed: completed})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", mark(todo.Completed), todo.ID, todo.Text)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}

func mark(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func printBoard(w io.Writer, board *ui.Board) {
	todos := board.Todos()
	if len(todos) == 0 {
		fmt.Fprintln(w, "No todos yet.")
		return
	}
	for _, t := range todos {
		fmt.Fprintf(w, "%4d %s %s\n", t.ID, mark(t.Completed), t.Text)
	}
	c := board.Counts()
	fmt.Fprintf(w, "\ntotal %d, completed %d, remaining %d\n", c.Total, c.Completed, c.Remaining)
	fmt.Fprintln(w, board.Summary())
}
