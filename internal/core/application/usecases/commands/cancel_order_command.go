package commands

import (
	"errors"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/guard"
)

// ErrCancelOrderCommandIsNotConstructed is returned when the command was not
// created through its constructor.
var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to abort an order from any
// non-terminal state. Cancelled orders are kept for audit, never deleted.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The note is optional free text for the audit trail.
func NewCancelOrderCommand(orderID kernel.UUID, note string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Note returns the free-text cancellation note.
func (c CancelOrderCommand) Note() string {
	return c.note
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
