// Package peerv1 provides Protocol Buffer definitions for chatmesh
// node-to-node RPC: kicking a relocated user's old session and
// delivering best-effort notifications to the node serving a user.
//
// To regenerate:
//
//	go generate ./api/proto/v1
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --connect-go_out=. --connect-go_opt=paths=source_relative peer.proto
package peerv1
