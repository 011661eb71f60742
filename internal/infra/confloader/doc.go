// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (overlaid as a map)
//  2. Environment variables
//  3. Configuration file (YAML)
//  4. Default values
//
// A Watcher can re-trigger loading when the config file changes, which
// the server uses to adjust the log level at runtime.
package confloader
