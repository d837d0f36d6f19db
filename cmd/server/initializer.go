package main

import (
	"fmt"
	"log"

	"reasoning-bench/internal/catalog"
	"reasoning-bench/internal/eventlog"
	"reasoning-bench/internal/mcpserver"
	"reasoning-bench/internal/pipeline"
)

// ServerComponents holds all initialized server components.
type ServerComponents struct {
	Hub    *eventlog.Hub
	Server *mcpserver.Server
}

// InitializeServer creates and initializes all server components. This
// function is extracted from main() to enable testing.
func InitializeServer() (*ServerComponents, error) {
	if err := pipeline.Validate(); err != nil {
		return nil, fmt.Errorf("component dependency graph: %w", err)
	}

	registry := catalog.Default()
	log.Printf("Loaded game catalogue: %d games", len(registry))

	hub := eventlog.NewHub()

	components := &ServerComponents{
		Hub:    hub,
		Server: mcpserver.New(registry, hub),
	}
	log.Println("Created reasoning benchmark server")

	return components, nil
}

// Cleanup releases any resources held by the server components. The
// event log hub owns no resources beyond its live websocket connections,
// which close themselves when their client disconnects.
func (c *ServerComponents) Cleanup() error {
	return nil
}
