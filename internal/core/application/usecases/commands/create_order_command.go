package commands

import (
	"errors"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTotalUnitsIsInvalid    = errors.New("total units must not be negative")
	ErrScheduledDateIsMissing = errors.New("scheduled date is required")
)

// CreateOrderCommand represents a request to create a replenishment order for
// a client. The total quantity is split across active products by the
// distribution engine before the order is persisted.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	clientID      kernel.UUID
	totalUnits    int
	orderType     order.Type
	scheduledDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new replenishment
// order. Validates identifiers, the order type, and that the total is not
// negative. A zero total is legal and produces an all-zero allocation.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	totalUnits int,
	orderType order.Type,
	scheduledDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setTotalUnits(totalUnits),
		cmd.setOrderType(orderType),
		cmd.setScheduledDate(scheduledDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client the order replenishes.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// TotalUnits returns the total quantity to distribute across products.
func (c CreateOrderCommand) TotalUnits() int {
	return c.totalUnits
}

// OrderType returns how the order originated.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// ScheduledDate returns the planned delivery date.
func (c CreateOrderCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setTotalUnits(totalUnits int) error {
	if totalUnits < 0 {
		return ErrTotalUnitsIsInvalid
	}
	c.totalUnits = totalUnits
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsMissing
	}
	c.scheduledDate = scheduledDate
	return nil
}
