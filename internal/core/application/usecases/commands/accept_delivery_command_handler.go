package commands

import (
	"context"
	"time"
)

// AcceptDeliveryCommandHandler handles a courier taking an awaiting order.
// The status check and the courier binding run inside one serializable
// transaction; when two couriers race, the loser's transaction aborts with
// a conflict and a retry finds the order already EnRoute.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept delivery command.
// Loads the order and the courier, performs the AwaitingCourier -> EnRoute
// transition with the courier bound, and persists the order.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	acceptingCourier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = aggregate.AcceptDelivery(acceptingCourier, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
