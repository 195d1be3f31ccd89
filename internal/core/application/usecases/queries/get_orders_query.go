package queries

import (
	"errors"
	"time"

	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders matching a set of optional filters.
// Filters compose through the With* builders; an unfiltered query returns
// every order, newest first.
//
// Example:
//
//	query := NewGetOrdersQuery().
//	    WithOwner(userID).
//	    WithStatus(order.EnRoute).
//	    WithCreatedBetween(from, to).
//	    WithItemName("latte")
//
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct {
	ownerID     string
	status      order.Status
	hasStatus   bool
	createdFrom time.Time
	createdTo   time.Time
	itemName    string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an unfiltered order query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// WithOwner restricts results to one customer's orders. Transport layers
// apply this for every customer caller so customers only see their own.
func (q GetOrdersQuery) WithOwner(ownerID string) GetOrdersQuery {
	q.ownerID = ownerID
	return q
}

// WithStatus restricts results to orders in one lifecycle status.
func (q GetOrdersQuery) WithStatus(status order.Status) GetOrdersQuery {
	q.status = status
	q.hasStatus = true
	return q
}

// WithCreatedBetween restricts results to orders created in [from, to).
// A zero bound leaves that side open.
func (q GetOrdersQuery) WithCreatedBetween(from, to time.Time) GetOrdersQuery {
	q.createdFrom = from
	q.createdTo = to
	return q
}

// WithItemName restricts results to orders containing a line whose product
// name matches the fragment, case insensitively.
func (q GetOrdersQuery) WithItemName(fragment string) GetOrdersQuery {
	q.itemName = fragment
	return q
}

// OwnerID returns the owner filter, empty when unset.
func (q GetOrdersQuery) OwnerID() string { return q.ownerID }

// Status returns the status filter and whether it is set.
func (q GetOrdersQuery) Status() (order.Status, bool) { return q.status, q.hasStatus }

// CreatedBetween returns the date range filter; zero times are open bounds.
func (q GetOrdersQuery) CreatedBetween() (from, to time.Time) { return q.createdFrom, q.createdTo }

// ItemName returns the item name fragment filter, empty when unset.
func (q GetOrdersQuery) ItemName() string { return q.itemName }

// GetOrdersQueryResponse is the order read model returned to clients.
type GetOrdersQueryResponse struct {
	ID                  string             `json:"id"`
	OwnerID             string             `json:"ownerId"`
	Items               []CartItemResponse `json:"items"`
	SubtotalCents       int64              `json:"subtotalCents"`
	TotalCents          int64              `json:"totalCents"`
	Street              string             `json:"street"`
	City                string             `json:"city"`
	Reference           string             `json:"reference,omitempty"`
	PaymentMethod       string             `json:"paymentMethod"`
	Status              string             `json:"status"`
	CreatedAt           time.Time          `json:"createdAt"`
	EstimatedDeliveryAt time.Time          `json:"estimatedDeliveryAt"`
	Notes               string             `json:"notes,omitempty"`
	CourierID           string             `json:"courierId,omitempty"`
	CourierName         string             `json:"courierName,omitempty"`
	CourierPhone        string             `json:"courierPhone,omitempty"`
	CourierAssignedAt   *time.Time         `json:"courierAssignedAt,omitempty"`
}
