// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving surface, started once at boot and stopped through
// the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
