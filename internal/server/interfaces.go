package server

import "context"

// Server defines the lifecycle contract for servers managed by this package.
type Server interface {
	// Run serves requests until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully. It returns a non-nil error only if
	// the listener could not be started or failed while serving.
	Run(ctx context.Context) error

	// RunServer is Run with a background context; errors are logged.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
