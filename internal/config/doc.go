// Package config provides configuration loading, merging, and validation
// facilities for the go-trips server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (including `envDefault` values)
//  2. JSON config file
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
