package commands

import (
	"errors"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/guard"
)

// ErrMarkPickedCommandIsNotConstructed is returned when the command was not
// created through its constructor.
var ErrMarkPickedCommandIsNotConstructed = errors.New(
	"MarkPickedCommand must be created via NewMarkPickedCommand constructor",
)

// MarkPickedCommand represents a request to mark an order as assembled and
// ready for dispatch.
type MarkPickedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedCommand creates a command to mark an order as picked.
func NewMarkPickedCommand(orderID kernel.UUID) (MarkPickedCommand, error) {
	cmd := MarkPickedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkPickedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedCommandIsNotConstructed)
}

// OrderID returns the order to mark as picked.
func (c MarkPickedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkPickedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
