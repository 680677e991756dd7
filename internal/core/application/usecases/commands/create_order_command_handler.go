package commands

import (
	"context"

	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Loads the client and the active products, runs the distribution engine to
// split the requested total, and persists the order in Scheduled status.
//
// Returns services.ErrUnallocatableOrder when a positive total cannot be
// distributed because no active product carries a share; the order is not
// created in that case.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.Allocator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewAllocator(),
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cl, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	products, err := uow.ProductRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	shares := make([]services.ProductShare, 0, len(products))
	for _, p := range products {
		shares = append(shares, services.ProductShare{
			ProductID:    p.ID(),
			SharePercent: p.SharePercent(),
		})
	}

	allocations, err := h.allocator.Distribute(shares, cmd.TotalUnits())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(allocations))
	for _, allocation := range allocations {
		item, itemErr := order.NewItem(allocation.ProductID, allocation.Quantity)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cl.ID(), cmd.OrderType(), cmd.ScheduledDate(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
