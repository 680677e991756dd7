package queries

import (
	"errors"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/guard"
)

// ErrGetClientReplenishmentQueryIsNotConstructed is returned when the query
// was not created through its constructor.
var ErrGetClientReplenishmentQueryIsNotConstructed = errors.New(
	"GetClientReplenishmentQuery must be created via NewGetClientReplenishmentQuery constructor",
)

// GetClientReplenishmentQuery retrieves a client's current replenishment
// parameters: the standard quantity as recalibration last left it, the
// periodicity, and when the next scheduled delivery is due.
type GetClientReplenishmentQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientReplenishmentQuery creates a query for one client's
// replenishment parameters.
func NewGetClientReplenishmentQuery(clientID kernel.UUID) (GetClientReplenishmentQuery, error) {
	q := GetClientReplenishmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setClientID(clientID); err != nil {
		return GetClientReplenishmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientReplenishmentQuery) Validate() error {
	return q.guard.Validate(ErrGetClientReplenishmentQueryIsNotConstructed)
}

// ClientID returns the client being queried.
func (q GetClientReplenishmentQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetClientReplenishmentQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	q.clientID = clientID
	return nil
}

// GetClientReplenishmentQueryResponse represents a client's replenishment
// parameters. NextDueDate is nil for a client with no delivery history: such
// a client is due immediately.
type GetClientReplenishmentQueryResponse struct {
	ClientID                  kernel.UUID
	Name                      string
	StandardQuantity          int
	StandardPeriodicityDays   int
	LastEffectiveDeliveryDate *time.Time
	NextDueDate               *time.Time
	Active                    bool
}
