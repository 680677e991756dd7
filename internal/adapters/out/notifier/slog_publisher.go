// Package notifier provides the outbound adapter for recalibration events.
// The engine treats publishing as fire-and-forget: events that cannot be
// delivered are lost, never retried, and never fail the delivery confirmation
// that produced them.
package notifier

import (
	"context"
	"log/slog"

	"replenishment/internal/core/domain/services"
)

// SlogRecalibrationPublisher publishes recalibration events to the structured
// log. Stands in for a message broker in deployments where the alerting
// collaborator consumes the log stream.
type SlogRecalibrationPublisher struct {
	logger *slog.Logger
}

// NewSlogRecalibrationPublisher creates a publisher writing to the given
// logger.
func NewSlogRecalibrationPublisher(logger *slog.Logger) *SlogRecalibrationPublisher {
	return &SlogRecalibrationPublisher{logger: logger}
}

// Publish emits one recalibration event.
func (p *SlogRecalibrationPublisher) Publish(ctx context.Context, event services.RecalibrationEvent) error {
	p.logger.LogAttrs(ctx, slog.LevelInfo, "client quantity recalibrated",
		slog.String("clientId", event.ClientID.String()),
		slog.Int("effectiveDeltaDays", event.EffectiveDeltaDays),
		slog.Int("previousQp", event.PreviousQp),
		slog.Int("newQp", event.NewQp),
		slog.Time("triggeredAt", event.TriggeredAt),
	)
	return nil
}
