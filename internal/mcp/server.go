package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the script library and the
// generation pipeline as tools.
type Server struct {
	store   *store.Store
	gen     *generator.Generator
	samples bool
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(st *store.Store, gen *generator.Generator, samples bool) *Server {
	s := &Server{
		store:   st,
		gen:     gen,
		samples: samples,
	}

	s.mcp = server.NewMCPServer(
		"historyquest",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateScriptTool, s.handleGenerateScript)
	s.mcp.AddTool(listScriptsTool, s.handleListScripts)
	s.mcp.AddTool(getScriptTool, s.handleGetScript)
	s.mcp.AddTool(deleteScriptTool, s.handleDeleteScript)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
