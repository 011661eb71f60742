// Package domain defines the core domain models for chatmesh.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. This package contains:
//
//   - BaseInfo: user profile, durable in SQL and mirrored in the cache
//   - ApplyInfo: pending friend-apply entries
//   - ChatThread: private/group conversation identifiers
//   - Kind: the numeric message-kind table of the wire protocol
//   - Errors: structured errors whose codes travel in the "error"
//     field of every response object
package domain
