package order

import (
	"errors"
	"fmt"
	"strings"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"
)

// ErrInsufficientStock is the sentinel error for dispatch attempts that
// exceed the available stock of one or more products.
var ErrInsufficientStock = errors.New("insufficient stock for dispatch")

// Item is a line of an order: one product variant with the quantity the
// distribution engine allocated to it. The delivered quantity stays nil until
// the delivery is confirmed and may differ from the allocation.
type Item struct {
	productID         kernel.UUID
	allocatedQuantity int
	deliveredQuantity *int
}

// NewItem creates an order item with validation.
// Zero allocations are legal: a zero-total order allocates zero to every
// active product.
func NewItem(productID kernel.UUID, allocatedQuantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if allocatedQuantity < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"allocated quantity",
			fmt.Errorf("%d is negative", allocatedQuantity),
		)
	}

	return Item{
		productID:         productID,
		allocatedQuantity: allocatedQuantity,
	}, nil
}

// RestoreItem reconstructs an item from persistence including its delivered
// quantity. Used exclusively by repository adapters.
func RestoreItem(productID kernel.UUID, allocatedQuantity int, deliveredQuantity *int) (Item, error) {
	item, err := NewItem(productID, allocatedQuantity)
	if err != nil {
		return Item{}, err
	}

	item.deliveredQuantity = deliveredQuantity
	return item, nil
}

// ProductID returns the product this line allocates to.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// AllocatedQuantity returns the units allocated by the distribution engine.
func (i Item) AllocatedQuantity() int {
	return i.allocatedQuantity
}

// DeliveredQuantity returns the units actually delivered, or nil before the
// delivery is confirmed.
func (i Item) DeliveredQuantity() *int {
	return i.deliveredQuantity
}

// InsufficientItem describes one order line whose allocation exceeds the
// available stock.
type InsufficientItem struct {
	ProductID kernel.UUID
	Allocated int
	Available int
}

// InsufficientStockError reports every order line that blocked a dispatch.
// The order stays in Picked; the caller may retry after restock.
type InsufficientStockError struct {
	Items []InsufficientItem
}

func (e *InsufficientStockError) Error() string {
	lines := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		lines = append(lines, fmt.Sprintf("%s (allocated %d, available %d)",
			item.ProductID, item.Allocated, item.Available))
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientStock, strings.Join(lines, ", "))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
