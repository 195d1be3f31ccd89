package commands

import (
	"context"
	"time"

	"cafedelivery/internal/core/ports"
)

// RemoveItemCommandHandler handles removal of cart lines.
type RemoveItemCommandHandler struct {
	uowFactory CartUoWFactory
	publisher  ports.CartChangePublisher
}

// NewRemoveItemCommandHandler creates a handler for cart line removal.
func NewRemoveItemCommandHandler(uowFactory CartUoWFactory, publisher ports.CartChangePublisher) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the remove item command.
// Removing an absent line succeeds without changing the cart.
func (h RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	ownerCart, err := cartRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = ownerCart.RemoveItem(cmd.LineID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, ownerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.CartChanged(ctx, cmd.OwnerID())
	return nil
}
