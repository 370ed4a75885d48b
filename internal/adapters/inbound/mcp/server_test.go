package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/lumen-lang/lumenfmt/internal/adapters/inbound/mcp"
)

func TestNewLumenfmtMCPServer(t *testing.T) {
	s := mcpadapter.NewLumenfmtMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewLumenfmtMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"lumenfmt_format_source",
		"lumenfmt_check",
		"lumenfmt_format_project",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools))
}
