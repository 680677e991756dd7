package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/core/domain/services"
)

// ScheduleDueOrdersCommandHandler creates standard replenishment orders for
// every due client in one pass. Each client's standard quantity is split
// across the active products by the distribution engine.
//
// An unallocatable client (positive quantity, no active shares) is logged and
// skipped; the run continues with the remaining clients. All created orders
// commit together.
type ScheduleDueOrdersCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.Allocator
	logger     *slog.Logger
}

// NewScheduleDueOrdersCommandHandler creates a handler for scheduler runs.
func NewScheduleDueOrdersCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ScheduleDueOrdersCommandHandler {
	return ScheduleDueOrdersCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewAllocator(),
		logger:     logger,
	}
}

// Handle processes one scheduler run. Returns the number of orders created.
func (h ScheduleDueOrdersCommandHandler) Handle(ctx context.Context, cmd ScheduleDueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dueClients, err := uow.ClientRepository().GetAllDue(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}
	if len(dueClients) == 0 {
		return 0, uow.Commit(ctx)
	}

	products, err := uow.ProductRepository().GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	shares := make([]services.ProductShare, 0, len(products))
	for _, p := range products {
		shares = append(shares, services.ProductShare{
			ProductID:    p.ID(),
			SharePercent: p.SharePercent(),
		})
	}

	created := 0
	for _, cl := range dueClients {
		newOrder, createErr := h.buildOrder(cl, shares, cmd.AsOf())
		if createErr != nil {
			if errors.Is(createErr, services.ErrUnallocatableOrder) {
				h.logger.Warn("skipping unallocatable client",
					"clientId", cl.ID().String(),
					"standardQuantity", cl.StandardQuantity())
				continue
			}
			return 0, createErr
		}
		if newOrder == nil {
			continue
		}

		if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
			return 0, err
		}
		created++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return created, nil
}

// buildOrder allocates the client's standard quantity across the active
// products. Returns a nil order when there is nothing to order (zero quantity
// and no active products).
func (h ScheduleDueOrdersCommandHandler) buildOrder(
	cl *client.Client,
	shares []services.ProductShare,
	scheduledDate time.Time,
) (*order.Order, error) {
	allocations, err := h.allocator.Distribute(shares, cl.StandardQuantity())
	if err != nil {
		return nil, err
	}
	if len(allocations) == 0 {
		return nil, nil //nolint:nilnil //nothing to order
	}

	items := make([]order.Item, 0, len(allocations))
	for _, allocation := range allocations {
		item, itemErr := order.NewItem(allocation.ProductID, allocation.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.NewOrder(kernel.NewUUID(), cl.ID(), order.Standard, scheduledDate, items)
}
