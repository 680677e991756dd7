package commands_test

import (
	"testing"
	"time"

	"replenishment/internal/core/application/usecases/commands"
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	scheduled := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, 7, order.Special, scheduled)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, 7, cmd.TotalUnits())
	assert.Equal(t, order.Special, cmd.OrderType())
	assert.Equal(t, scheduled, cmd.ScheduledDate())
}

func TestNewCreateOrderCommand_ZeroTotalIsLegal(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 0, order.Special, time.Now())
	require.NoError(t, err)
}

func TestNewCreateOrderCommand_NegativeTotal(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), -1, order.Special, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTotalUnitsIsInvalid)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), 7, order.Special, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 7, order.TypeUnknown, time.Now())
	require.Error(t, err)
}

func TestNewCreateOrderCommand_ZeroScheduledDate(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 7, order.Special, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrScheduledDateIsMissing)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
