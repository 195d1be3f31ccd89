package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/domain/model/courier"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/core/ports"
	"cafedelivery/internal/pkg/errs"
)

type MockDeliveredOrderRepository struct{ mock.Mock }

func (m *MockDeliveredOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveredOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveredOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockDeliveredOrderRepository) GetFirstInAwaitingCourierStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveredCourierRepository struct{ mock.Mock }

func (m *MockDeliveredCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDeliveredCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDeliveredCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockDeliveredCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockDeliveredUoW struct{ mock.Mock }

func (m *MockDeliveredUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveredUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveredUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveredUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeliveredUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockDeliveredUoWFactory struct{ mock.Mock }

func (m *MockDeliveredUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func enRouteOrder(t *testing.T, boundCourier *courier.Courier) *order.Order {
	t.Helper()
	aggregate := awaitingCourierOrder(t)
	require.NoError(t, aggregate.AcceptDelivery(boundCourier, time.Now().UTC()))
	return aggregate
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	boundCourier := availableCourier(t)
	aggregate := enRouteOrder(t, boundCourier)
	cmd, err := commands.NewMarkDeliveredCommand(aggregate.ID(), boundCourier.ID())
	require.NoError(t, err)

	deliveriesBefore := boundCourier.DeliveriesCompleted()

	orderRepo := new(MockDeliveredOrderRepository)
	courierRepo := new(MockDeliveredCourierRepository)
	uow := new(MockDeliveredUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		courierRepo.On("Get", ctx, boundCourier.ID()).Return(boundCourier, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveredUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, aggregate.Status())
	assert.Equal(t, deliveriesBefore+1, boundCourier.DeliveriesCompleted())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	boundCourier := availableCourier(t)
	aggregate := enRouteOrder(t, boundCourier)

	impostor := availableCourier(t)
	cmd, err := commands.NewMarkDeliveredCommand(aggregate.ID(), impostor.ID())
	require.NoError(t, err)

	orderRepo := new(MockDeliveredOrderRepository)
	courierRepo := new(MockDeliveredCourierRepository)
	uow := new(MockDeliveredUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveredUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.EnRoute, aggregate.Status())
	assert.Equal(t, 12, impostor.DeliveriesCompleted())
	courierRepo.AssertNotCalled(t, "Get")
	orderRepo.AssertNotCalled(t, "Update")
}

// A repeated completion fails on the status transition and must not credit
// the courier a second time.
func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	boundCourier := availableCourier(t)
	aggregate := enRouteOrder(t, boundCourier)
	require.NoError(t, aggregate.CompleteDelivery(order.RoleCourier))
	boundCourier.RecordDelivery()
	deliveriesBefore := boundCourier.DeliveriesCompleted()

	cmd, err := commands.NewMarkDeliveredCommand(aggregate.ID(), boundCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockDeliveredOrderRepository)
	courierRepo := new(MockDeliveredCourierRepository)
	uow := new(MockDeliveredUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		courierRepo.On("Get", ctx, boundCourier.ID()).Return(boundCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveredUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, deliveriesBefore, boundCourier.DeliveriesCompleted())
	courierRepo.AssertNotCalled(t, "Update")
}
