// Package delivery defines the entry points that expose the application.
package delivery

import "context"

// Delivery is a long-running entry point started by the application
// lifecycle, such as an HTTP server or a background relay.
type Delivery interface {
	Serve(ctx context.Context) error
}
