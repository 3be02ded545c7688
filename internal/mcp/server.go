// ABOUTME: MCP server setup over the WorkoutPlan API client.
// ABOUTME: Tools share synchronized collections across tool calls.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/workoutplan/cli/internal/api"
	"github.com/workoutplan/cli/internal/models"
	"github.com/workoutplan/cli/internal/sync"
)

// Server wraps the MCP server with the authenticated API client. Plans and
// logs are held in synchronized collections so repeated tool calls reuse
// reconciled state instead of re-fetching after every mutation.
type Server struct {
	mcpServer *mcp.Server
	client    *api.Client

	plans *sync.Collection[models.WorkoutPlan]
	logs  *sync.Collection[models.WorkoutLog]
}

// NewServer creates an MCP server over the given API client.
func NewServer(client *api.Client, version string) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "workoutplan",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		client:    client,
		plans:     sync.NewCollection[models.WorkoutPlan](client.Plans()),
		logs:      sync.NewCollection[models.WorkoutLog](client.Logs()),
	}

	s.registerTools()

	return s
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
