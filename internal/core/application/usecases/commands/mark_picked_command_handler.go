package commands

import (
	"context"
	"time"
)

// MarkPickedCommandHandler handles the business logic for marking orders as
// picked. The transition touches only the order aggregate; the coarse status
// stays Scheduled.
type MarkPickedCommandHandler struct {
	uowFactory OrderUoWFactory
	opGuard    OperationGuard
}

// NewMarkPickedCommandHandler creates a handler for the pick transition.
func NewMarkPickedCommandHandler(uowFactory OrderUoWFactory, opGuard OperationGuard) MarkPickedCommandHandler {
	return MarkPickedCommandHandler{
		uowFactory: uowFactory,
		opGuard:    opGuard,
	}
}

// Handle processes the mark-picked command. Returns
// opguard.ErrOperationInProgress when another transition for the same order is
// already running.
func (h MarkPickedCommandHandler) Handle(ctx context.Context, cmd MarkPickedCommand) error {
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

	if err = o.MarkPicked(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
