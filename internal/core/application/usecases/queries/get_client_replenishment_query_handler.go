package queries

import (
	"context"
	"database/sql"
	"errors"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientReplenishmentQueryHandler retrieves a client's replenishment
// parameters from the database. The next due date is projected from the last
// effective delivery and the standard periodicity.
type GetClientReplenishmentQueryHandler struct {
	db *gorm.DB
}

// NewGetClientReplenishmentQueryHandler creates a handler for client
// replenishment queries.
func NewGetClientReplenishmentQueryHandler(db *gorm.DB) GetClientReplenishmentQueryHandler {
	return GetClientReplenishmentQueryHandler{db: db}
}

// Handle executes the query for one client.
// Returns errs.ErrObjectNotFound when the client does not exist.
func (h GetClientReplenishmentQueryHandler) Handle(
	ctx context.Context,
	query GetClientReplenishmentQuery,
) (GetClientReplenishmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientReplenishmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			standard_quantity,
			standard_periodicity_days,
			last_effective_delivery_date,
			active
		FROM clients
		WHERE id = ?
	`, query.ClientID().Bytes()).Row()

	var resp GetClientReplenishmentQueryResponse
	var id uuid.UUID
	var lastDelivery sql.NullTime

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.StandardQuantity,
		&resp.StandardPeriodicityDays,
		&lastDelivery,
		&resp.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetClientReplenishmentQueryResponse{},
				errs.NewObjectNotFoundError("client", query.ClientID().String())
		}
		return GetClientReplenishmentQueryResponse{}, err
	}

	clientID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetClientReplenishmentQueryResponse{}, err
	}
	resp.ClientID = clientID

	if lastDelivery.Valid {
		last := lastDelivery.Time
		resp.LastEffectiveDeliveryDate = &last

		next := last.AddDate(0, 0, resp.StandardPeriodicityDays)
		resp.NextDueDate = &next
	}

	return resp, nil
}
