// Package config provides configuration loading, merging, and validation
// facilities for the configuration server and its clients.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (a .env file is loaded into the environment first)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] for cmd/server and
// [GetClientConfig] for the console and configctl.
package config
