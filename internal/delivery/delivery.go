// Package delivery defines the long-running inbound surfaces started by the
// application: the HTTP server, the push dispatch loop and the Pub/Sub puller.
package delivery

import "context"

// Delivery is an inbound surface that blocks in Serve until it is stopped
type Delivery interface {
	Serve(ctx context.Context) error
}
