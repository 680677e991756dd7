package ports

import (
	"context"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// Dispatch and cancellation move stock balances through this method.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllActive retrieves every product participating in allocation.
	GetAllActive(ctx context.Context) ([]*product.Product, error)
}
