// Package delivery defines the contract shared by the process's serving surfaces.
package delivery

import "context"

// Delivery is a long-running server started by the fx invoke hook.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
