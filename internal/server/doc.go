// Package server wires and runs the agent's control API server.
//
// It provides orchestration for the HTTP server and the background workers:
// startup, signal handling, and graceful shutdown.
package server
