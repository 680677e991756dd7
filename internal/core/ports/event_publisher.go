package ports

import (
	"context"

	"replenishment/internal/core/domain/services"
)

// RecalibrationEventPublisher delivers recalibration events to the alerting
// collaborator. Publishing is fire-and-forget from the engine's perspective:
// a failed publish must never roll back the quantity update or the delivery
// confirmation it accompanied.
type RecalibrationEventPublisher interface {
	Publish(ctx context.Context, event services.RecalibrationEvent) error
}
