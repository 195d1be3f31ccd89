package commands

import (
	"context"

	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies role-gated status transitions.
// The state machine on the Order aggregate enforces legality; this handler
// adds ownership scoping for customers and persists the result.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Customers can only act on their own orders; an order belonging to someone
// else surfaces as not found so order ids are not probeable. Admin actors
// are not ownership scoped.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.ActorRole() == order.RoleCustomer && aggregate.OwnerID() != cmd.ActorID() {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = h.apply(aggregate, cmd.Target(), cmd.ActorRole()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// apply performs the aggregate transition matching the already validated
// target status.
func (h ChangeOrderStatusCommandHandler) apply(aggregate *order.Order, target order.Status, role order.Role) error {
	switch target {
	case order.Confirmed:
		return aggregate.Confirm(role)
	case order.InPreparation:
		return aggregate.StartPreparation(role)
	case order.AwaitingCourier:
		return aggregate.ReadyForCourier(role)
	case order.Cancelled:
		return aggregate.Cancel(role)
	default:
		return errs.NewInvalidTransitionError(aggregate.Status().String(), target.String())
	}
}
