package commands

import (
	"context"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/product"
)

// DispatchOrderCommandHandler handles the business logic for dispatching
// orders. Verifies the full allocation against current stock before any
// decrement: an order either dispatches completely or not at all. The stock
// decrements commit in the same transaction as the status change.
//
// Returns *order.InsufficientStockError (wrapping order.ErrInsufficientStock)
// listing every short item when stock does not cover the allocation; the
// order stays Picked.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	opGuard    OperationGuard
}

// NewDispatchOrderCommandHandler creates a handler for the dispatch transition.
func NewDispatchOrderCommandHandler(uowFactory UoWFactory, opGuard OperationGuard) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		opGuard:    opGuard,
	}
}

// Handle processes the dispatch command.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	products := make(map[kernel.UUID]*product.Product, len(o.Items()))
	stockByProduct := make(map[kernel.UUID]int, len(o.Items()))
	for _, item := range o.Items() {
		p, getErr := uow.ProductRepository().Get(ctx, item.ProductID())
		if getErr != nil {
			return getErr
		}
		products[item.ProductID()] = p
		stockByProduct[item.ProductID()] = p.StockBalance()
	}

	if err = o.Dispatch(time.Now().UTC(), stockByProduct); err != nil {
		return err
	}

	for _, item := range o.Items() {
		p := products[item.ProductID()]
		if err = p.DecreaseStock(item.AllocatedQuantity()); err != nil {
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
