package ports

import (
	"context"
	"time"

	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	// Recalibration writes the new standard quantity through this method.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetAllDue retrieves every active client whose standard periodicity has
	// elapsed since the last effective delivery (or who has never been
	// delivered). Used by the replenishment scheduler.
	GetAllDue(ctx context.Context, asOf time.Time) ([]*client.Client, error)
}
