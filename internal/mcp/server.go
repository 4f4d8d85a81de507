package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents read the hackathon briefing.
type Server struct {
	content *content.Content
	timing  boot.Timing
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over c. A zero timing uses the
// terminal skin's pacing.
func NewServer(c *content.Content, timing boot.Timing) *Server {
	if timing == (boot.Timing{}) {
		timing = boot.DefaultTiming()
	}
	s := &Server{
		content: c,
		timing:  timing,
	}

	s.mcp = server.NewMCPServer(
		"synthesis",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getOverviewTool, s.handleGetOverview)
	s.mcp.AddTool(listTracksTool, s.handleListTracks)
	s.mcp.AddTool(getFAQTool, s.handleGetFAQ)
	s.mcp.AddTool(getTimelineTool, s.handleGetTimeline)
	s.mcp.AddTool(getBootScriptTool, s.handleGetBootScript)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
