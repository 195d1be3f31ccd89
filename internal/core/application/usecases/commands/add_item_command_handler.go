package commands

import (
	"context"
	"errors"
	"time"

	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/ports"
	"cafedelivery/internal/pkg/errs"
)

// AddItemCommandHandler handles the business logic for adding cart lines.
// Creates the cart lazily on the owner's first add and merges lines with
// the same product and size variant.
type AddItemCommandHandler struct {
	uowFactory CartUoWFactory
	publisher  ports.CartChangePublisher
}

// NewAddItemCommandHandler creates a handler for cart add operations.
// Requires a CartUoWFactory for transactional persistence and a publisher
// for cart change notifications.
func NewAddItemCommandHandler(uowFactory CartUoWFactory, publisher ports.CartChangePublisher) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the add item command.
// Loads or lazily creates the owner's cart, merges the new line, and saves
// within a transaction. Watchers are notified after a successful commit.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := cart.NewItem(
		cmd.ProductID(),
		cmd.Name(),
		cmd.UnitPrice(),
		cmd.Quantity(),
		cmd.SizeVariant(),
		cmd.ImageRef(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	now := time.Now().UTC()

	ownerCart, err := cartRepo.Get(ctx, cmd.OwnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		ownerCart, err = cart.NewCart(cmd.OwnerID(), now)
	}
	if err != nil {
		return err
	}

	if err = ownerCart.AddItem(item, now); err != nil {
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
