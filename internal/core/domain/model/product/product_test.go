package product_test

import (
	"testing"

	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	share := decimal.NewFromInt(50)

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Cola 350ml", share, 200, 40)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Cola 350ml", p.Name())
		assert.True(t, p.SharePercent().Equal(share))
		assert.True(t, p.Active())
		assert.Equal(t, 200, p.StockBalance())
		assert.Equal(t, 40, p.MinStock())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Cola 350ml", share, 200, 40)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", share, 200, 40)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with share above 100", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Cola 350ml", decimal.NewFromInt(101), 200, 40)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with negative share", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Cola 350ml", decimal.NewFromInt(-1), 200, 40)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Cola 350ml", share, -1, 40)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should accept zero share", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Cola 350ml", decimal.Zero, 200, 40)

		require.NoError(t, err)
		assert.True(t, p.SharePercent().IsZero())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail validation for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value product", func(t *testing.T) {
		p := &product.Product{}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore inactive product", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Guarana 2L", decimal.NewFromInt(30), false, 10, 5)

		require.NoError(t, err)
		assert.False(t, p.Active())
	})
}

func TestProduct_Stock(t *testing.T) {
	newProduct := func(t *testing.T, balance int) *product.Product {
		t.Helper()
		p, err := product.NewProduct(kernel.NewUUID(), "Cola 350ml", decimal.NewFromInt(50), balance, 20)
		require.NoError(t, err)
		return p
	}

	t.Run("decrease reduces balance", func(t *testing.T) {
		p := newProduct(t, 100)

		require.NoError(t, p.DecreaseStock(30))
		assert.Equal(t, 70, p.StockBalance())
	})

	t.Run("decrease below zero is rejected and balance unchanged", func(t *testing.T) {
		p := newProduct(t, 10)

		err := p.DecreaseStock(11)

		require.Error(t, err)
		assert.ErrorIs(t, err, product.ErrStockUnderflow)
		assert.Equal(t, 10, p.StockBalance())
	})

	t.Run("decrease with negative quantity is rejected", func(t *testing.T) {
		p := newProduct(t, 10)

		require.Error(t, p.DecreaseStock(-1))
	})

	t.Run("restore adds back to balance", func(t *testing.T) {
		p := newProduct(t, 10)

		require.NoError(t, p.RestoreStock(5))
		assert.Equal(t, 15, p.StockBalance())
	})

	t.Run("below min stock after decrement", func(t *testing.T) {
		p := newProduct(t, 25)

		require.False(t, p.BelowMinStock())
		require.NoError(t, p.DecreaseStock(10))
		assert.True(t, p.BelowMinStock())
	})
}

func TestProduct_Activation(t *testing.T) {
	t.Run("deactivate and activate toggle allocation participation", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Cola 350ml", decimal.NewFromInt(50), 100, 20)
		require.NoError(t, err)

		p.Deactivate()
		assert.False(t, p.Active())

		p.Activate()
		assert.True(t, p.Active())
	})
}
