// Package delivery defines the contract shared by every inbound adapter,
// whether it serves HTTP traffic or runs scheduled jobs.
package delivery

import "context"

// Delivery is implemented by long-running servers managed by the application
// lifecycle. Serve blocks until the passed context is cancelled, then shuts
// down gracefully.
type Delivery interface {
	Serve(ctx context.Context) error
}
