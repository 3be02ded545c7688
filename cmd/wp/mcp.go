// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the authenticated client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and uses your current
session, so log in first.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "workoutplan": {
        "command": "wp",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_exercises   Browse the exercise catalog
  list_plans       List workout plans
  create_plan      Create a workout plan
  next_workout     Find the next upcoming plan
  list_logs        List workout logs
  log_workout      Record a completed workout
  delete_log       Delete a workout log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		server := mcp.NewServer(client, Version)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
