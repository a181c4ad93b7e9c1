// Package delivery defines the entry points that drive the application.
package delivery

import "context"

// Delivery is a long-running front end such as an HTTP server or a background worker.
// Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
