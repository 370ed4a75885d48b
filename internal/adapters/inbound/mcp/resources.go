package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/manifest"
)

// registerResources registers all lumenfmt MCP resources on the given
// server.
func registerResources(s *server.MCPServer, projectPath string) {
	// lumen://manifest - the project manifest as written on disk
	s.AddResource(
		mcplib.NewResource(
			"lumen://manifest",
			"Project Manifest",
			mcplib.WithResourceDescription("The project's lumen.yaml: identity and declared source directories"),
			mcplib.WithMIMEType("application/yaml"),
		),
		handleManifestResource(projectPath),
	)
}

func handleManifestResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := os.ReadFile(filepath.Join(projectPath, manifest.FileName))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", manifest.FileName, err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "lumen://manifest",
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	}
}
