package product

import (
	"errors"
	"fmt"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrStockUnderflow is returned when a stock decrease would drive the
	// balance below zero.
	ErrStockUnderflow = errors.New("stock balance cannot go below zero")
)

// Product represents a sellable product variant participating in order
// allocation. Each active product carries a standard share percent that
// determines its slice of a client's total order quantity.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and non-empty name
//   - Standard share percent lies in [0, 100]
//   - Stock balance and minimum stock are never negative
//   - Can only be created through NewProduct or RestoreProduct
//
// The share-sum invariant (shares of active products summing to roughly 100)
// belongs to configuration management, not to this aggregate.
type Product struct {
	id            kernel.UUID
	name          string
	sharePercent  decimal.Decimal
	active        bool
	stockBalance  int
	minStock      int
	isConstructed bool
}

// NewProduct creates a new Product with validation. The product starts active
// with the supplied stock balance and minimum stock threshold.
func NewProduct(id kernel.UUID, name string, sharePercent decimal.Decimal, stockBalance, minStock int) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSharePercent(sharePercent),
		p.setStockBalance(stockBalance),
		p.setMinStock(minStock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// active flag. Used exclusively by repository adapters.
func RestoreProduct(id kernel.UUID, name string, sharePercent decimal.Decimal, active bool, stockBalance, minStock int) (*Product, error) {
	p, err := NewProduct(id, name, sharePercent, stockBalance, minStock)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// SharePercent returns the product's standard allocation share (0-100).
func (p *Product) SharePercent() decimal.Decimal {
	return p.sharePercent
}

// Active reports whether the product participates in allocation.
func (p *Product) Active() bool {
	return p.active
}

// StockBalance returns the current warehouse stock balance.
func (p *Product) StockBalance() int {
	return p.stockBalance
}

// MinStock returns the minimum stock threshold.
func (p *Product) MinStock() int {
	return p.minStock
}

// BelowMinStock reports whether the current balance has fallen below the
// configured minimum.
func (p *Product) BelowMinStock() bool {
	return p.stockBalance < p.minStock
}

// Deactivate removes the product from allocation without deleting it.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate returns the product to allocation.
func (p *Product) Activate() {
	p.active = true
}

// DecreaseStock reduces the stock balance by quantity.
// Returns ErrStockUnderflow when quantity exceeds the current balance;
// the balance is left unchanged in that case.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if quantity > p.stockBalance {
		return fmt.Errorf("%w: balance %d, requested %d", ErrStockUnderflow, p.stockBalance, quantity)
	}

	p.stockBalance -= quantity
	return nil
}

// RestoreStock returns quantity units to the stock balance. Used when a
// dispatched order is cancelled or returned.
func (p *Product) RestoreStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}

	p.stockBalance += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSharePercent(sharePercent decimal.Decimal) error {
	if sharePercent.IsNegative() || sharePercent.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("share percent", sharePercent.String(), 0, 100)
	}
	p.sharePercent = sharePercent
	return nil
}

func (p *Product) setStockBalance(stockBalance int) error {
	if stockBalance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock balance", fmt.Errorf("%d is negative", stockBalance))
	}
	p.stockBalance = stockBalance
	return nil
}

func (p *Product) setMinStock(minStock int) error {
	if minStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min stock", fmt.Errorf("%d is negative", minStock))
	}
	p.minStock = minStock
	return nil
}
