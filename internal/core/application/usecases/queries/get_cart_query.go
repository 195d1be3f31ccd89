// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: handlers read with
// direct SQL and return flat read models rather than domain aggregates.
package queries

import (
	"errors"
	"time"

	"cafedelivery/internal/pkg/errs"
	"cafedelivery/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
	ErrQueryOwnerIDIsRequired = errs.NewValueIsRequiredError("ownerID")
)

// GetCartQuery retrieves the current snapshot of an owner's cart.
//
// Example:
//
//	query, _ := NewGetCartQuery(userID)
//	handler := NewGetCartQueryHandler(db)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//	fmt.Printf("Cart has %d lines\n", len(snapshot.Items))
type GetCartQuery struct {
	ownerID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for an owner's cart snapshot.
func NewGetCartQuery(ownerID string) (GetCartQuery, error) {
	if ownerID == "" {
		return GetCartQuery{}, ErrQueryOwnerIDIsRequired
	}

	return GetCartQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// OwnerID returns the cart owner's opaque identifier.
func (q GetCartQuery) OwnerID() string {
	return q.ownerID
}

// CartItemResponse is one cart line in a cart read model.
type CartItemResponse struct {
	LineID         string `json:"id"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	SizeVariant    string `json:"sizeVariant"`
	ImageRef       string `json:"imageRef"`
}

// GetCartQueryResponse is the cart read model. An owner without a cart gets
// an empty response rather than an error, mirroring the lazy cart creation
// on the write side.
type GetCartQueryResponse struct {
	OwnerID       string             `json:"ownerId"`
	Items         []CartItemResponse `json:"items"`
	SubtotalCents int64              `json:"subtotalCents"`
	TotalCents    int64              `json:"totalCents"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}
