// Package productrepo provides data transfer objects and mapping functions
// for product persistence. This package implements the repository pattern for
// the product aggregate.
package productrepo

import (
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. The share percent is stored as numeric to keep allocation
// arithmetic exact.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	SharePercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Active       bool            `gorm:"not null;index"`
	StockBalance int             `gorm:"type:int;not null"`
	MinStock     int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		SharePercent: aggregate.SharePercent(),
		Active:       aggregate.Active(),
		StockBalance: aggregate.StockBalance(),
		MinStock:     aggregate.MinStock(),
	}
}

// toDomain converts a database DTO to a product aggregate using
// RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.SharePercent,
		dto.Active,
		dto.StockBalance,
		dto.MinStock,
	)
}
