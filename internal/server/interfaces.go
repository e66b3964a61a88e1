package server

// Server is the lifecycle of the transports started by cmd/server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and every transport has shut down.
	RunServer()

	// Shutdown gracefully stops the servers and frees their listeners.
	Shutdown()
}
