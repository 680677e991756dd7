package commands_test

import (
	"testing"
	"time"

	"replenishment/internal/core/application/usecases/commands"
	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleDueOrdersCommandHandler_Handle_CreatesOrdersForDueClients(t *testing.T) {
	ctx := t.Context()
	asOf := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	dueClients := []*client.Client{
		newTestClient(t, 7, 14),
		newTestClient(t, 10, 7),
	}
	products := []*product.Product{
		newTestProduct(t, "Classic", "50", 100),
		newTestProduct(t, "Light", "30", 100),
		newTestProduct(t, "Strong", "20", 100),
	}
	cmd, _ := commands.NewScheduleDueOrdersCommand(asOf)

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("GetAllDue", ctx, asOf).Return(dueClients, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("GetAllActive", ctx).Return(products, nil).Once()
	uow.On("OrderRepository").Return(orderRepo)

	var created []*order.Order
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*order.Order))
	}).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDueOrdersCommandHandler(factory, testLogger())
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, created, 2)
	assert.Equal(t, dueClients[0].ID(), created[0].ClientID())
	assert.Equal(t, 7, created[0].RequestedTotalUnits())
	assert.Equal(t, order.Standard, created[0].Type())
	assert.Equal(t, asOf, created[0].ScheduledDate())
	assert.Equal(t, dueClients[1].ID(), created[1].ClientID())
	assert.Equal(t, 10, created[1].RequestedTotalUnits())
	uow.AssertExpectations(t)
}

func TestScheduleDueOrdersCommandHandler_Handle_NoDueClients(t *testing.T) {
	ctx := t.Context()
	asOf := time.Now()
	cmd, _ := commands.NewScheduleDueOrdersCommand(asOf)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("GetAllDue", ctx, asOf).Return([]*client.Client{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDueOrdersCommandHandler(factory, testLogger())
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestScheduleDueOrdersCommandHandler_Handle_SkipsUnallocatableClient(t *testing.T) {
	ctx := t.Context()
	asOf := time.Now()
	dueClients := []*client.Client{
		newTestClient(t, 7, 14), // positive quantity, no shares -> skipped
		newTestClient(t, 0, 14), // zero quantity, no products -> nothing to order
	}
	cmd, _ := commands.NewScheduleDueOrdersCommand(asOf)

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("GetAllDue", ctx, asOf).Return(dueClients, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("GetAllActive", ctx).Return([]*product.Product{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDueOrdersCommandHandler(factory, testLogger())
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
