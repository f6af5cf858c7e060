// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application (HTTP today).
type Delivery interface {
	// Serve blocks, serving requests until the listener fails or is shut down.
	Serve(ctx context.Context) error
}
