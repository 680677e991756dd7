package services

import (
	"errors"
	"fmt"
	"sort"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrUnallocatableOrder is returned when a positive total quantity cannot be
// split because no active product carries a share. Order creation must be
// aborted; the quantity is never silently dropped.
var ErrUnallocatableOrder = errors.New("order cannot be allocated: no active product shares")

// ProductShare is the allocation input for one active product.
type ProductShare struct {
	ProductID    kernel.UUID
	SharePercent decimal.Decimal
}

// Allocation is the allocation output for one product.
type Allocation struct {
	ProductID kernel.UUID
	Quantity  int
}

// Allocator is the distribution engine: a pure domain service that splits a
// client's total order quantity across active products according to their
// configured share percents.
//
// The allocator uses the largest-remainder (Hamilton) method:
//  1. Compute each product's exact proportional share of the total.
//  2. Floor every share to an integer base quantity.
//  3. Hand the leftover units, one each, to the products with the largest
//     fractional parts, breaking ties by ascending product ID.
//
// The defining guarantee is exactness: allocations always sum to the
// requested total, for any non-negative total and any share vector.
// Independent per-item rounding cannot provide this.
type Allocator struct{}

// NewAllocator creates a new Allocator instance.
func NewAllocator() Allocator {
	return Allocator{}
}

// Distribute splits totalUnits across the given product shares.
//
// Shares are normalized against their own sum, so vectors that do not add up
// to exactly 100 still allocate the full total. A zero total yields an
// all-zero allocation. Returns ErrUnallocatableOrder when totalUnits is
// positive and no product can receive it.
func (Allocator) Distribute(shares []ProductShare, totalUnits int) ([]Allocation, error) {
	if totalUnits < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total units",
			fmt.Errorf("%d is negative", totalUnits),
		)
	}

	shareSum := decimal.Zero
	for _, share := range shares {
		if err := share.ProductID.Validate(); err != nil {
			return nil, fmt.Errorf("product share: %w", err)
		}
		if share.SharePercent.IsNegative() {
			return nil, errs.NewValueIsOutOfRangeError(
				"share percent", share.SharePercent.String(), 0, 100,
			)
		}
		shareSum = shareSum.Add(share.SharePercent)
	}

	if len(shares) == 0 || shareSum.IsZero() {
		if totalUnits > 0 {
			return nil, fmt.Errorf("%w: %d units requested", ErrUnallocatableOrder, totalUnits)
		}
		allocations := make([]Allocation, 0, len(shares))
		for _, share := range shares {
			allocations = append(allocations, Allocation{ProductID: share.ProductID})
		}
		return allocations, nil
	}

	total := decimal.NewFromInt(int64(totalUnits))

	type fraction struct {
		index int
		part  decimal.Decimal
	}

	allocations := make([]Allocation, len(shares))
	fractions := make([]fraction, len(shares))
	assigned := 0

	for i, share := range shares {
		exact := share.SharePercent.Mul(total).DivRound(shareSum, 24)
		base := exact.Floor()

		allocations[i] = Allocation{
			ProductID: share.ProductID,
			Quantity:  int(base.IntPart()),
		}
		fractions[i] = fraction{index: i, part: exact.Sub(base)}
		assigned += allocations[i].Quantity
	}

	remainder := totalUnits - assigned

	sort.Slice(fractions, func(a, b int) bool {
		cmp := fractions[a].part.Cmp(fractions[b].part)
		if cmp != 0 {
			return cmp > 0
		}
		idA := shares[fractions[a].index].ProductID.String()
		idB := shares[fractions[b].index].ProductID.String()
		return idA < idB
	})

	for i := 0; i < remainder && i < len(fractions); i++ {
		allocations[fractions[i].index].Quantity++
	}

	return allocations, nil
}
