package commands

import (
	"context"

	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/errs"
)

// MarkDeliveredCommandHandler completes a delivery. The order's transition
// to Delivered and the increment of the courier's completed-deliveries
// counter commit in the same transaction, so the counter moves exactly once
// per delivered order even under concurrent retries: the transition fails
// on the second attempt and the increment rolls back with it.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark delivered command.
// A courier other than the one bound to the order is rejected with an
// invalid transition error.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if aggregate.CourierID() == nil || !aggregate.CourierID().IsEqual(cmd.CourierID()) {
		return errs.NewInvalidTransitionError(aggregate.Status().String(), order.Delivered.String())
	}

	boundCourier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = aggregate.CompleteDelivery(order.RoleCourier); err != nil {
		return err
	}
	boundCourier.RecordDelivery()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, boundCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
