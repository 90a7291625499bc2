package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usebeehiiv/beehiiv-mcp/internal/mcp/tools"
)

// Server wraps the MCP server with the Beehiiv tool catalog.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
}

// NewServer creates a new MCP server with the provided dependencies.
func NewServer(deps *tools.Deps) (*Server, error) {
	if deps == nil {
		return nil, fmt.Errorf("deps is required")
	}

	if err := tools.ValidateCatalog(); err != nil {
		return nil, fmt.Errorf("validating tool catalog: %w", err)
	}

	s := &Server{deps: deps}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "beehiiv-analytics",
			Version: "1.0.0",
		},
		nil,
	)

	// Logging outermost so unknown-tool short circuits still get logged.
	s.mcpServer.AddReceivingMiddleware(
		LoggingMiddleware(),
		CallBoundaryMiddleware(tools.Names()),
	)

	tools.Register(s.mcpServer, deps)

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
