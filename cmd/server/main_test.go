package main

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainInitialization(t *testing.T) {
	components, err := InitializeServer()
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.Server)
	assert.NotNil(t, components.Hub)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "test-reasoning-benchmark-server",
		Version: "1.0.0-test",
	}, nil)
	require.NotNil(t, mcpServer)

	components.Server.RegisterTools(mcpServer)

	transport := &mcp.StdioTransport{}
	require.NotNil(t, transport)

	// Note: we don't call mcpServer.Run() here, as it would block on
	// stdio interaction.
}

func TestCleanupIsIdempotent(t *testing.T) {
	components, err := InitializeServer()
	require.NoError(t, err)

	assert.NoError(t, components.Cleanup())
	assert.NoError(t, components.Cleanup())
}
