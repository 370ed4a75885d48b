package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewLumenfmtMCPServer creates a new MCP server with all lumenfmt tools and
// resources registered. projectPath is the root of the project to operate
// on.
func NewLumenfmtMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"lumenfmt",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
