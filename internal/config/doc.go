// Package config provides configuration loading, merging, and validation
// for the dev config server.
//
// Configuration is assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
