package commands

import (
	"context"
	"time"
)

// ReturnOrderCommandHandler handles the business logic for returned
// deliveries. A return is only valid from Dispatched, so the order's stock is
// guaranteed to be held; it is restored in the same transaction as the
// reschedule.
type ReturnOrderCommandHandler struct {
	uowFactory UoWFactory
	opGuard    OperationGuard
}

// NewReturnOrderCommandHandler creates a handler for the return transition.
func NewReturnOrderCommandHandler(uowFactory UoWFactory, opGuard OperationGuard) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		opGuard:    opGuard,
	}
}

// Handle processes the return command.
func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	if err = o.Return(time.Now().UTC(), cmd.Reason()); err != nil {
		return err
	}

	for _, item := range o.Items() {
		p, getErr := uow.ProductRepository().Get(ctx, item.ProductID())
		if getErr != nil {
			return getErr
		}
		if err = p.RestoreStock(item.AllocatedQuantity()); err != nil {
			return err
		}
		if err = uow.ProductRepository().Update(ctx, p); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
