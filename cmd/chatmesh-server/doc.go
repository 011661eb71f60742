// Package main provides the entry point for chatmesh-server.
//
// The server is one logic node of the chatmesh cluster and provides:
//
//   - Message handlers for login, contacts, chat and presence
//   - Peer RPC (connect over h2c) for cross-node notifications
//   - Gossip membership so nodes find each other's RPC address
//   - Prometheus metrics and a health endpoint on the RPC listener
//
// Usage:
//
//	chatmesh-server [flags]
//	chatmesh-server --config /path/to/config.yaml
//
// The server loads configuration, wires the logic core against redis
// and postgres, and joins the cluster.
package main
