package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"replenishment/internal/core/application/usecases/commands"
	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/core/domain/services"
	"replenishment/internal/pkg/opguard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredClient(t *testing.T, quantity, periodicityDays int, lastDelivery *time.Time) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(kernel.NewUUID(), "Corner Shop", quantity, periodicityDays, lastDelivery, true)
	require.NoError(t, err)
	return c
}

func confirmDeliveryMocks(
	ctx context.Context, o *order.Order, cl *client.Client,
) (*MockUoW, *MockUoWFactory) {
	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ClientRepository").Return(clientRepo)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	clientRepo.On("Get", ctx, o.ClientID()).Return(cl, nil).Once()
	clientRepo.On("Update", ctx, cl).Return(nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestConfirmDeliveryCommandHandler_Handle_FirstDelivery(t *testing.T) {
	ctx := t.Context()
	cl := restoredClient(t, 60, 14, nil)
	o := newDispatchedOrder(t, cl.ID(), 60)
	deliveredAt := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), deliveredAt,
		map[kernel.UUID]int{o.Items()[0].ProductID(): 60})

	_, factory := confirmDeliveryMocks(ctx, o, cl)
	publisher := new(MockRecalibrationPublisher)

	h := commands.NewConfirmDeliveryCommandHandler(factory, opguard.NewOperationGuard(0), publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Delivered, o.Status())
	require.NotNil(t, o.ActualDeliveryDate())
	assert.Equal(t, deliveredAt, *o.ActualDeliveryDate())
	require.NotNil(t, cl.LastEffectiveDeliveryDate())
	assert.Equal(t, deliveredAt, *cl.LastEffectiveDeliveryDate())
	assert.Equal(t, 60, cl.StandardQuantity())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_OutOfToleranceRecalibrates(t *testing.T) {
	ctx := t.Context()
	deliveredAt := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	previous := deliveredAt.AddDate(0, 0, -10)
	cl := restoredClient(t, 60, 14, &previous)
	o := newDispatchedOrder(t, cl.ID(), 60)
	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), deliveredAt,
		map[kernel.UUID]int{o.Items()[0].ProductID(): 60})

	_, factory := confirmDeliveryMocks(ctx, o, cl)
	publisher := new(MockRecalibrationPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("services.RecalibrationEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(services.RecalibrationEvent)
			assert.Equal(t, cl.ID(), event.ClientID)
			assert.Equal(t, 10, event.EffectiveDeltaDays)
			assert.Equal(t, 60, event.PreviousQp)
			assert.Equal(t, 84, event.NewQp)
		}).Return(nil).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, opguard.NewOperationGuard(0), publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// delivered 60 over 10 days -> weekly 42 -> projected to 14 days -> 84
	assert.Equal(t, 84, cl.StandardQuantity())
	assert.Equal(t, deliveredAt, *cl.LastEffectiveDeliveryDate())
	publisher.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_WithinToleranceLeavesQuantity(t *testing.T) {
	ctx := t.Context()
	deliveredAt := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	previous := deliveredAt.AddDate(0, 0, -14)
	cl := restoredClient(t, 60, 14, &previous)
	o := newDispatchedOrder(t, cl.ID(), 55)
	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), deliveredAt,
		map[kernel.UUID]int{o.Items()[0].ProductID(): 55})

	_, factory := confirmDeliveryMocks(ctx, o, cl)
	publisher := new(MockRecalibrationPublisher)

	h := commands.NewConfirmDeliveryCommandHandler(factory, opguard.NewOperationGuard(0), publisher, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 60, cl.StandardQuantity())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_NonPositiveIntervalIsAdvisory(t *testing.T) {
	ctx := t.Context()
	deliveredAt := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	previous := deliveredAt.Add(2 * time.Hour) // clock skew: previous after current
	cl := restoredClient(t, 60, 14, &previous)
	o := newDispatchedOrder(t, cl.ID(), 60)
	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), deliveredAt,
		map[kernel.UUID]int{o.Items()[0].ProductID(): 60})

	_, factory := confirmDeliveryMocks(ctx, o, cl)
	publisher := new(MockRecalibrationPublisher)

	h := commands.NewConfirmDeliveryCommandHandler(factory, opguard.NewOperationGuard(0), publisher, testLogger())
	err := h.Handle(ctx, cmd)

	// recalibration is skipped, confirmation still succeeds
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, 60, cl.StandardQuantity())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	deliveredAt := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	previous := deliveredAt.AddDate(0, 0, -20)
	cl := restoredClient(t, 60, 14, &previous)
	o := newDispatchedOrder(t, cl.ID(), 60)
	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), deliveredAt,
		map[kernel.UUID]int{o.Items()[0].ProductID(): 60})

	_, factory := confirmDeliveryMocks(ctx, o, cl)
	publisher := new(MockRecalibrationPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("services.RecalibrationEvent")).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, opguard.NewOperationGuard(0), publisher, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	publisher.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_FromScheduled(t *testing.T) {
	ctx := t.Context()
	cl := restoredClient(t, 60, 14, nil)
	o := newScheduledOrder(t, cl.ID(), 60)
	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), time.Now(),
		map[kernel.UUID]int{o.Items()[0].ProductID(): 60})

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ClientRepository").Return(clientRepo)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	clientRepo.On("Get", ctx, o.ClientID()).Return(cl, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockRecalibrationPublisher)
	h := commands.NewConfirmDeliveryCommandHandler(factory, opguard.NewOperationGuard(0), publisher, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}
