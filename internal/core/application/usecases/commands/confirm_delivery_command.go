package commands

import (
	"errors"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"
	"replenishment/internal/pkg/guard"
)

// ErrConfirmDeliveryCommandIsNotConstructed is returned when the command was
// not created through its constructor.
var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a confirmed delivery at the client: the
// actual delivery date and the per-product delivered quantities, which may
// differ from the allocation.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	deliveredAt        time.Time
	deliveredByProduct map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm an order's delivery.
func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	deliveredAt time.Time,
	deliveredByProduct map[kernel.UUID]int,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveredAt(deliveredAt),
		cmd.setDeliveredByProduct(deliveredByProduct),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveredAt returns the actual delivery timestamp.
func (c ConfirmDeliveryCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

// DeliveredByProduct returns a copy of the per-product delivered quantities.
func (c ConfirmDeliveryCommand) DeliveredByProduct() map[kernel.UUID]int {
	delivered := make(map[kernel.UUID]int, len(c.deliveredByProduct))
	for productID, quantity := range c.deliveredByProduct {
		delivered[productID] = quantity
	}
	return delivered
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("delivered at")
	}
	c.deliveredAt = deliveredAt
	return nil
}

func (c *ConfirmDeliveryCommand) setDeliveredByProduct(deliveredByProduct map[kernel.UUID]int) error {
	if len(deliveredByProduct) == 0 {
		return errs.NewValueIsRequiredError("delivered quantities")
	}

	c.deliveredByProduct = make(map[kernel.UUID]int, len(deliveredByProduct))
	for productID, quantity := range deliveredByProduct {
		c.deliveredByProduct[productID] = quantity
	}
	return nil
}
