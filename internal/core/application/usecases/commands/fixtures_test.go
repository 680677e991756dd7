package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProduct(t *testing.T, name string, sharePercent string, stockBalance int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, decimal.RequireFromString(sharePercent), stockBalance, 0)
	require.NoError(t, err)
	return p
}

func newTestClient(t *testing.T, quantity, periodicityDays int) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), "Corner Shop", quantity, periodicityDays)
	require.NoError(t, err)
	return c
}

func newScheduledOrder(t *testing.T, clientID kernel.UUID, quantities ...int) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(quantities))
	for _, q := range quantities {
		item, err := order.NewItem(kernel.NewUUID(), q)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), clientID, order.Standard, time.Now(), items)
	require.NoError(t, err)
	return o
}

func newPickedOrder(t *testing.T, clientID kernel.UUID, quantities ...int) *order.Order {
	t.Helper()
	o := newScheduledOrder(t, clientID, quantities...)
	require.NoError(t, o.MarkPicked(time.Now()))
	return o
}

func newDispatchedOrder(t *testing.T, clientID kernel.UUID, quantities ...int) *order.Order {
	t.Helper()
	o := newPickedOrder(t, clientID, quantities...)

	stock := make(map[kernel.UUID]int, len(o.Items()))
	for _, item := range o.Items() {
		stock[item.ProductID()] = item.AllocatedQuantity()
	}
	require.NoError(t, o.Dispatch(time.Now(), stock))
	return o
}
