// Package delivery holds the process entry points started by cmd binaries.
package delivery

import "context"

// Delivery is a long-running server started after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
