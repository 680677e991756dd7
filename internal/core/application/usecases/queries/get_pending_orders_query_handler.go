package queries

import (
	"context"
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves non-terminal orders from the
// database. Delivered and cancelled orders are filtered out to show the
// active replenishment workload.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders.
// Results are sorted by scheduled date, then order ID, for stable output.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			order_type,
			status,
			substatus,
			requested_total_units,
			scheduled_date
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY scheduled_date, id
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse
		var id, clientID uuid.UUID
		var orderType, status, substatus int
		var totalUnits int
		var scheduledDate time.Time

		err = rows.Scan(
			&id,
			&clientID,
			&orderType,
			&status,
			&substatus,
			&totalUnits,
			&scheduledDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ClientID = ownerID

		resp.OrderType = order.Type(orderType)
		resp.Status = order.Status(status)
		resp.Substatus = order.Substatus(substatus)
		resp.RequestedTotalUnits = totalUnits
		resp.ScheduledDate = scheduledDate
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
