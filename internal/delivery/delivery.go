// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a server that can be started by the application runtime.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
