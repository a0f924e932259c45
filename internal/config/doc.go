// Package config provides configuration loading, merging, and validation
// facilities for the pattern-keeper client and document server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the document server and
// [GetClientConfig] for the editor client. Both apply defaults to unset
// intervals before validating.
package config
