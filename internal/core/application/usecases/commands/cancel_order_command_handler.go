package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. When the order currently holds product stock (cancelled after
// dispatch, before delivery) the stock is restored in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	opGuard    OperationGuard
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, opGuard OperationGuard) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		opGuard:    opGuard,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	restoreStock := o.StockDecremented()

	if err = o.Cancel(time.Now().UTC(), cmd.Note()); err != nil {
		return err
	}

	if restoreStock {
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
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
