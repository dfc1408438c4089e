package server

// Server defines the lifecycle contract of the panel server.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives and
	// shutdown has finished.
	RunServer()

	// Shutdown gracefully stops the HTTP server.
	Shutdown()
}
