package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServerPopulatesComponents(t *testing.T) {
	components, err := InitializeServer()
	require.NoError(t, err)
	defer components.Cleanup()

	assert.NotNil(t, components.Server)
	assert.NotNil(t, components.Hub)
	assert.False(t, components.Hub.IsEnabled())
}

func TestServerComponentsCleanupOnZeroValue(t *testing.T) {
	components := &ServerComponents{}
	assert.NoError(t, components.Cleanup())
}
