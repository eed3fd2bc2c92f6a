// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is a serving surface, typically an HTTP server. Serve blocks
// until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
