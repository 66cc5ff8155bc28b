// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import (
	"context"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown of a delivery.
const DefaultShutdownTimeout = 10 * time.Second

// Delivery is a serving surface (an HTTP API). Serve blocks until the
// delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
