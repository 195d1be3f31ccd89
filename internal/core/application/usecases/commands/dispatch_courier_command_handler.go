package commands

import (
	"context"
	"errors"
	"time"

	"cafedelivery/internal/core/domain/services"
	"cafedelivery/internal/pkg/errs"
)

var (
	ErrNoAvailableCouriersFound = errors.New("no available couriers found")
	ErrNoOrderFound             = errors.New("no order found")
)

// DispatchCourierCommandHandler orchestrates automatic courier dispatch.
// Finds the oldest order awaiting a courier and offers it to the best
// available candidate. Ensures transactional consistency when updating
// both the order and the courier.
//
// Example:
//
//	handler := NewDispatchCourierCommandHandler(uowFactory)
//	cmd := NewDispatchCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No orders awaiting a courier")
//	case errors.Is(err, ErrNoAvailableCouriersFound):
//	    log.Println("All couriers are off shift")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Courier dispatched successfully")
//	}
type DispatchCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDispatchCourierCommandHandler creates a handler for dispatch operations.
// Requires a DeliveryUoWFactory for coordinating transactional updates
// across repositories.
func NewDispatchCourierCommandHandler(uowFactory DeliveryUoWFactory) DispatchCourierCommandHandler {
	return DispatchCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Retrieves the oldest awaiting order, lists available couriers, and uses
// CourierDispatcher to pick and bind the best match. Updates the order
// within a single transaction. Returns specific errors for no orders
// (ErrNoOrderFound) or no couriers (ErrNoAvailableCouriersFound).
func (h DispatchCourierCommandHandler) Handle(ctx context.Context, command DispatchCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.GetFirstInAwaitingCourierStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoAvailableCouriersFound
	}

	_, err = services.NewCourierDispatcher().Dispatch(aggregate, couriers, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
