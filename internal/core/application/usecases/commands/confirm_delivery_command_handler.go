package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/services"
	"replenishment/internal/core/ports"
)

// ConfirmDeliveryCommandHandler handles the business logic for delivery
// confirmation, the trigger of the adaptive recalibration flow.
//
// After recording the delivery on the order, the handler measures the realized
// interval since the client's previous effective delivery. An interval outside
// the tolerance band recalibrates the client's standard quantity; the new
// quantity commits in the same transaction as the status change. A zero or
// negative interval is advisory: recalibration is skipped with a warning, the
// confirmation itself succeeds.
//
// Recalibration events are published after the commit. A failed publish is
// logged and never surfaces to the caller.
type ConfirmDeliveryCommandHandler struct {
	uowFactory   UoWFactory
	opGuard      OperationGuard
	publisher    ports.RecalibrationEventPublisher
	recalibrator services.Recalibrator
	logger       *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	opGuard OperationGuard,
	publisher ports.RecalibrationEventPublisher,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory:   uowFactory,
		opGuard:      opGuard,
		publisher:    publisher,
		recalibrator: services.NewRecalibrator(),
		logger:       logger,
	}
}

// Handle processes the delivery confirmation command.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.opGuard.Acquire(cmd.OrderID().String()); err != nil {
		return err
	}
	defer h.opGuard.Release(cmd.OrderID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cl, err := uow.ClientRepository().Get(ctx, o.ClientID())
	if err != nil {
		return err
	}

	if err = o.ConfirmDelivery(cmd.DeliveredAt(), cmd.DeliveredByProduct()); err != nil {
		return err
	}

	event, err := h.recalibrate(o.TotalDelivered(), cmd.DeliveredAt(), cl)
	if err != nil {
		return err
	}

	cl.RecordDelivery(cmd.DeliveredAt())

	if err = uow.ClientRepository().Update(ctx, cl); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if event != nil {
		if pubErr := h.publisher.Publish(ctx, *event); pubErr != nil {
			h.logger.Error("failed to publish recalibration event",
				"clientId", event.ClientID.String(),
				"error", pubErr)
		}
	}

	return nil
}

// recalibrate runs the tolerance check against the client's previous delivery
// and applies the recalibrated quantity when the interval drifted out of band.
// Returns the event to publish, or nil when no recalibration fired.
func (h ConfirmDeliveryCommandHandler) recalibrate(
	totalDelivered int,
	deliveredAt time.Time,
	cl *client.Client,
) (*services.RecalibrationEvent, error) {
	previous := cl.LastEffectiveDeliveryDate()
	if previous == nil {
		return nil, nil
	}

	deltaDays := h.recalibrator.EffectiveDeltaDays(deliveredAt, *previous)
	if !h.recalibrator.OutOfTolerance(deltaDays, cl.StandardPeriodicityDays()) {
		return nil, nil
	}

	newQp, err := h.recalibrator.Recalibrate(totalDelivered, deltaDays, cl.StandardPeriodicityDays())
	if err != nil {
		if errors.Is(err, services.ErrInvalidInterval) {
			h.logger.Warn("skipping recalibration: non-positive delivery interval",
				"clientId", cl.ID().String(),
				"deltaDays", deltaDays)
			return nil, nil
		}
		return nil, err
	}

	previousQp, err := cl.ApplyRecalibration(newQp)
	if err != nil {
		return nil, err
	}

	return &services.RecalibrationEvent{
		ClientID:           cl.ID(),
		EffectiveDeltaDays: deltaDays,
		PreviousQp:         previousQp,
		NewQp:              newQp,
		TriggeredAt:        deliveredAt,
	}, nil
}
