// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations, including order items and the status audit trail.
package orderrepo

import (
	"time"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and status changes live in child tables keyed by order ID.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID            uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderType           int       `gorm:"type:int;not null"`
	RequestedTotalUnits int       `gorm:"type:int;not null"`
	Status              int       `gorm:"type:int;not null;index"`
	Substatus           int       `gorm:"type:int;not null"`
	ScheduledDate       time.Time
	ActualDeliveryDate  *time.Time
	Items               []ItemDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusChanges       []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. The composite primary key keeps updates
// idempotent when the full aggregate is saved.
type ItemDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AllocatedQuantity int       `gorm:"type:int;not null"`
	DeliveredQuantity *int      `gorm:"type:int"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one entry of the order's audit trail. The
// sequence number preserves the append order and, combined with the order ID,
// forms the primary key.
type StatusChangeDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq           int       `gorm:"type:int;primaryKey"`
	FromStatus    int       `gorm:"type:int;not null"`
	FromSubstatus int       `gorm:"type:int;not null"`
	ToStatus      int       `gorm:"type:int;not null"`
	ToSubstatus   int       `gorm:"type:int;not null"`
	ChangedAt     time.Time
	Note          string `gorm:"type:text"`
}

// TableName specifies the database table name for order status changes.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order aggregate to its database representation,
// including items and the full audit trail.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:           orderID,
			ProductID:         item.ProductID().Bytes(),
			AllocatedQuantity: item.AllocatedQuantity(),
			DeliveredQuantity: item.DeliveredQuantity(),
		})
	}

	history := aggregate.History()
	changes := make([]StatusChangeDTO, 0, len(history))
	for i, change := range history {
		changes = append(changes, StatusChangeDTO{
			OrderID:       orderID,
			Seq:           i,
			FromStatus:    int(change.FromStatus),
			FromSubstatus: int(change.FromSubstatus),
			ToStatus:      int(change.ToStatus),
			ToSubstatus:   int(change.ToSubstatus),
			ChangedAt:     change.ChangedAt,
			Note:          change.Note,
		})
	}

	return OrderDTO{
		ID:                  orderID,
		ClientID:            aggregate.ClientID().Bytes(),
		OrderType:           int(aggregate.Type()),
		RequestedTotalUnits: aggregate.RequestedTotalUnits(),
		Status:              int(aggregate.Status()),
		Substatus:           int(aggregate.Substatus()),
		ScheduledDate:       aggregate.ScheduledDate(),
		ActualDeliveryDate:  aggregate.ActualDeliveryDate(),
		Items:               items,
		StatusChanges:       changes,
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDto.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(productID, itemDto.AllocatedQuantity, itemDto.DeliveredQuantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.StatusChanges))
	for _, changeDto := range dto.StatusChanges {
		history = append(history, order.StatusChange{
			FromStatus:    order.Status(changeDto.FromStatus),
			FromSubstatus: order.Substatus(changeDto.FromSubstatus),
			ToStatus:      order.Status(changeDto.ToStatus),
			ToSubstatus:   order.Substatus(changeDto.ToSubstatus),
			ChangedAt:     changeDto.ChangedAt,
			Note:          changeDto.Note,
		})
	}

	return order.RestoreOrder(
		id,
		clientID,
		order.Type(dto.OrderType),
		dto.ScheduledDate,
		items,
		order.Status(dto.Status),
		order.Substatus(dto.Substatus),
		dto.ActualDeliveryDate,
		history,
	)
}
