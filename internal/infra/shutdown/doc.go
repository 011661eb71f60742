// Package shutdown provides graceful shutdown for chatmesh.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Named cleanup hooks, run in reverse registration order
package shutdown
