// Package ports defines the contracts between the replenishment core and
// infrastructure: repositories for the three aggregates, the unit of work
// that spans them, and the recalibration event publisher. These interfaces
// enable dependency inversion and testability.
package ports

import (
	"context"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// items and audit trail.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with all
	// items and status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
