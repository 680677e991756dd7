// Package queries contains read operations that bypass the domain model.
// Implements the Query pattern for the read side of the CQRS architecture:
// handlers run raw SQL against the database and map rows straight into
// response structs.
package queries

import (
	"errors"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/pkg/guard"
)

// ErrGetPendingOrdersQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders that have not reached a terminal
// status. Returns orders awaiting picking, dispatch, or delivery for
// monitoring and warehouse planning.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
// This is a parameterless query that fetches every non-terminal order.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse represents one pending order.
type GetPendingOrdersQueryResponse struct {
	ID                  kernel.UUID
	ClientID            kernel.UUID
	OrderType           order.Type
	Status              order.Status
	Substatus           order.Substatus
	RequestedTotalUnits int
	ScheduledDate       time.Time
}
