package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/ports"
	"cafedelivery/internal/pkg/errs"
)

type MockAddItemCartRepository struct{ mock.Mock }

func (m *MockAddItemCartRepository) Get(ctx context.Context, ownerID string) (*cart.Cart, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockAddItemCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAddItemCartRepository) Delete(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type MockAddItemCartUoW struct{ mock.Mock }

func (m *MockAddItemCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddItemCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddItemCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddItemCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockAddItemCartUoWFactory struct{ mock.Mock }

func (m *MockAddItemCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockAddItemPublisher struct{ mock.Mock }

func (m *MockAddItemPublisher) CartChanged(ctx context.Context, ownerID string) {
	m.Called(ctx, ownerID)
}

func addItemCommand(t *testing.T) commands.AddItemCommand {
	t.Helper()
	cmd, err := commands.NewAddItemCommand(
		"user-1", kernel.NewUUID(), "Latte", mustMoney(t, 450), 2, "medium", "",
	)
	require.NoError(t, err)
	return cmd
}

func TestAddItemCommandHandler_Handle_MergesIntoExistingCart(t *testing.T) {
	ctx := t.Context()
	cmd := addItemCommand(t)

	existing, err := cart.NewCart("user-1", time.Now().UTC())
	require.NoError(t, err)

	cartRepo := new(MockAddItemCartRepository)
	uow := new(MockAddItemCartUoW)
	publisher := new(MockAddItemPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, "user-1").Return(existing, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("CartChanged", ctx, "user-1").Once()

	factory := new(MockAddItemCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, existing.Items(), 1)
	assert.Equal(t, 2, existing.Items()[0].Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_CreatesCartLazily(t *testing.T) {
	ctx := t.Context()
	cmd := addItemCommand(t)

	cartRepo := new(MockAddItemCartRepository)
	uow := new(MockAddItemCartUoW)
	publisher := new(MockAddItemPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, "user-1").Return(nil, errs.NewObjectNotFoundError("cart", "user-1")).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("CartChanged", ctx, "user-1").Once()

	factory := new(MockAddItemCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	saved := cartRepo.Calls[1].Arguments[1].(*cart.Cart)
	assert.Equal(t, "user-1", saved.OwnerID())
	assert.Len(t, saved.Items(), 1)
	assert.Equal(t, int64(900), saved.Total().Cents())
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemCommand{} // not constructed properly

	factory := new(MockAddItemCartUoWFactory)
	publisher := new(MockAddItemPublisher)
	handler := commands.NewAddItemCommandHandler(factory, publisher)

	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
	publisher.AssertNotCalled(t, "CartChanged")
}

func TestAddItemCommandHandler_Handle_GetCartError(t *testing.T) {
	ctx := t.Context()
	cmd := addItemCommand(t)

	cartRepo := new(MockAddItemCartRepository)
	uow := new(MockAddItemCartUoW)
	publisher := new(MockAddItemPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, "user-1").Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddItemCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	publisher.AssertNotCalled(t, "CartChanged")
}

func TestAddItemCommandHandler_Handle_CommitErrorSkipsNotify(t *testing.T) {
	ctx := t.Context()
	cmd := addItemCommand(t)

	existing, err := cart.NewCart("user-1", time.Now().UTC())
	require.NoError(t, err)

	cartRepo := new(MockAddItemCartRepository)
	uow := new(MockAddItemCartUoW)
	publisher := new(MockAddItemPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, "user-1").Return(existing, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddItemCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddItemCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	publisher.AssertNotCalled(t, "CartChanged")
}
