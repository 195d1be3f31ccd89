package commands

import (
	"context"
	"time"

	"cafedelivery/internal/core/ports"
)

// SetQuantityCommandHandler handles quantity changes on existing cart lines.
// Setting a quantity on a line that does not exist is a no-op; the cart is
// still saved and watchers notified so callers observe a consistent stream.
type SetQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	publisher  ports.CartChangePublisher
}

// NewSetQuantityCommandHandler creates a handler for quantity change operations.
func NewSetQuantityCommandHandler(uowFactory CartUoWFactory, publisher ports.CartChangePublisher) SetQuantityCommandHandler {
	return SetQuantityCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the set quantity command.
// A missing cart surfaces as an ObjectNotFoundError; a missing line does not.
func (h SetQuantityCommandHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
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

	if err = ownerCart.SetQuantity(cmd.LineID(), cmd.Quantity(), time.Now().UTC()); err != nil {
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
