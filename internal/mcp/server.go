// Package mcp exposes the assistant over the Model Context Protocol so
// agent tooling can query the catalog and knowledge base.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mediveda/healthbot/internal/assistant"
	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/chatlog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes store assistant tools.
type Server struct {
	assistant *assistant.Assistant
	catalog   *catalog.Store
	logs      *chatlog.Dispatcher
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(a *assistant.Assistant, cat *catalog.Store, logs *chatlog.Dispatcher) *Server {
	s := &Server{
		assistant: a,
		catalog:   cat,
		logs:      logs,
	}

	s.mcp = server.NewMCPServer(
		"healthbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askAssistantTool, s.handleAskAssistant)
	s.mcp.AddTool(searchProductsTool, s.handleSearchProducts)
	s.mcp.AddTool(logProductClickTool, s.handleLogProductClick)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
