// Package server runs the HTTP and gRPC transports of the configuration
// server: listener setup, signal handling and graceful shutdown.
package server
