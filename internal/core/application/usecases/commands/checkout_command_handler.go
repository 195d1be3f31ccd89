package commands

import (
	"context"
	"errors"
	"time"

	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/core/ports"
	"cafedelivery/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checking out an owner whose cart is empty
// or absent.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")

// CheckoutCommandHandler converts a cart into a pending order.
// The order insert and the cart clear happen in one transaction, so either
// both are visible or neither is. Under serializable isolation a concurrent
// cart mutation aborts one of the transactions with a conflict instead of
// letting the order capture a torn snapshot.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.CartChangePublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory spanning the cart and order repositories.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, publisher ports.CartChangePublisher) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the checkout command.
// Snapshots the cart into a new Pending order, then clears the cart, all
// within a single transaction. Returns ErrCartIsEmpty when there is nothing
// to check out.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	orderRepo := uow.OrderRepository()

	ownerCart, err := cartRepo.Get(ctx, cmd.OwnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCartIsEmpty
	}
	if err != nil {
		return err
	}
	if ownerCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OwnerID(),
		ownerCart.Items(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, cmd.OwnerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.CartChanged(ctx, cmd.OwnerID())
	return nil
}
