// Package config provides configuration loading, merging, and validation
// facilities for the go-worklog agent.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetAgentConfig], which builds the merged
// [StructuredConfig], applies defaults for tunables, and projects the result
// into the [AgentConfig] view consumed by the rest of the application.
package config
