// Package clientrepo provides data transfer objects and mapping functions for
// client persistence. This package implements the repository pattern for the
// client aggregate.
package clientrepo

import (
	"time"

	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client
// aggregates, including the replenishment parameters the recalibration flow
// maintains.
type ClientDTO struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                      string    `gorm:"type:varchar(255);not null"`
	StandardQuantity          int       `gorm:"type:int;not null"`
	StandardPeriodicityDays   int       `gorm:"type:int;not null"`
	LastEffectiveDeliveryDate *time.Time
	Active                    bool `gorm:"not null;index"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:                        aggregate.ID().Bytes(),
		Name:                      aggregate.Name(),
		StandardQuantity:          aggregate.StandardQuantity(),
		StandardPeriodicityDays:   aggregate.StandardPeriodicityDays(),
		LastEffectiveDeliveryDate: aggregate.LastEffectiveDeliveryDate(),
		Active:                    aggregate.Active(),
	}
}

// toDomain converts a database DTO to a client aggregate using RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		dto.Name,
		dto.StandardQuantity,
		dto.StandardPeriodicityDays,
		dto.LastEffectiveDeliveryDate,
		dto.Active,
	)
}
