package commands

import (
	"context"

	"cafedelivery/internal/core/ports"
)

// ClearCartCommandHandler handles emptying a cart in one step. The cart
// document is deleted; the next AddItem recreates it lazily.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	publisher  ports.CartChangePublisher
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory, publisher ports.CartChangePublisher) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the clear cart command.
// Deleting an absent cart is not an error, so clearing is idempotent.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	if err := uow.CartRepository().Delete(ctx, cmd.OwnerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.CartChanged(ctx, cmd.OwnerID())
	return nil
}
