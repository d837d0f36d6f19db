// Package main provides the entry point for the Reasoning Benchmark MCP
// server.
//
// This server is designed to be spawned as a child process by an MCP
// client and communicates via stdio using the Model Context Protocol. It
// exposes run_episode, evaluate_game, and evaluate_many as tools so an
// agent harness under evaluation can drive the benchmark engine directly.
//
// Environment variables:
//   - DEBUG: Set to "true" to enable debug logging
//   - RB_EVENTLOG_ADDR: if set, starts a websocket push server at this
//     address streaming the per-episode event log for run_episode calls
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	if os.Getenv("DEBUG") == "true" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Println("Starting Reasoning Benchmark Server in debug mode...")
	}

	components, err := InitializeServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "reasoning-benchmark-server",
		Version: "1.0.0",
	}, nil)
	log.Println("Created MCP server")

	components.Server.RegisterTools(mcpServer)
	log.Println("Registered tools: run_episode, evaluate_game, evaluate_many")

	if addr := os.Getenv("RB_EVENTLOG_ADDR"); addr != "" {
		httpServer := &http.Server{Addr: addr, Handler: components.Hub}
		go func() {
			log.Printf("Starting event log websocket server on %s", addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("Warning: event log server stopped: %v", err)
			}
		}()
	}

	transport := &mcp.StdioTransport{}
	log.Println("Created stdio transport")

	ctx := context.Background()
	log.Println("Starting MCP server...")
	if err := mcpServer.Run(ctx, transport); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
