package commands

import (
	"errors"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/guard"
)

// ErrReturnOrderCommandIsNotConstructed is returned when the command was not
// created through its constructor.
var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents a delivery refused by the client. The order
// is rescheduled for the next business day and product stock is restored.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return a dispatched order.
// The reason is optional free text for the audit trail.
func NewReturnOrderCommand(orderID kernel.UUID, reason string) (ReturnOrderCommand, error) {
	cmd := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReturnOrderCommand{}, err
	}
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the free-text return reason.
func (c ReturnOrderCommand) Reason() string {
	return c.reason
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
