// Package order implements the order aggregate and its lifecycle state machine.
//
// An order is created at checkout as a frozen snapshot of the customer's
// cart: items, subtotal, and total never change afterwards, no matter what
// happens to the cart. The only mutable part of an order is its status,
// which moves through
//
//	Pending → Confirmed → InPreparation → AwaitingCourier → EnRoute → Delivered
//
// with Cancelled reachable from every non-terminal state. Each transition is
// gated by the role of the acting party (customer, admin, courier); anything
// not in the table is rejected with an InvalidTransitionError and leaves the
// order untouched. Delivered and Cancelled are terminal.
//
// Courier identity is bound exactly once, during the AwaitingCourier →
// EnRoute transition, together with the status change, so no reader can
// observe an en-route order without a courier.
package order
