package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_webapp/internal/logger"
	"todo_webapp/internal/rpc"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "todoctl",
	Short: "Manage todos on a running todo server",
	Long: `todoctl talks to a todo server over its RPC endpoints.

The server address comes from --server, then TODO_SERVER_URL, then
http://127.0.0.1:8080.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "error"
		if verbose {
			level = "debug"
		}
		logger.InitWriter(os.Stderr, level, false)
	},
}

func defaultServer() string {
	if v := os.Getenv("TODO_SERVER_URL"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}

func newClient() *rpc.Client {
	return rpc.NewClient(serverURL, &http.Client{Timeout: timeout})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer(), "todo server base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout, 0 waits for the server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log client activity to stderr")

	rootCmd.AddCommand(listCmd, addCmd, doneCmd, undoneCmd, rmCmd, tuiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
