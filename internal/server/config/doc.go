// Package config provides server configuration for chatmesh.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Business validation (addresses, ranges, log levels)
//   - sanitize.go: Log sanitization (hide sensitive values)
//   - components.go: Mapping onto per-component settings
//
// Configuration is loaded via internal/infra/confloader and supports
// multiple sources: files, environment variables, and flags.
package config
