package kernel

import (
	"fmt"

	"cafedelivery/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing a monetary amount below zero.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// Money is an immutable monetary amount stored as integer cents.
// Integer arithmetic keeps cart total recomputation exact: for every cart,
// total == subtotal == Σ(unitPrice × quantity) holds without rounding drift.
//
// The zero value (0 cents) is a valid amount; Zero() makes the intent explicit.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(1050) // 10.50
//	lineTotal := price.MulQuantity(3)          // 31.50
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money amount from integer cents.
// Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units for presentation.
// Persistence and arithmetic stay in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by an item quantity.
// A non-positive quantity yields the zero amount: quantities at or below
// zero contribute nothing to a cart total.
func (m Money) MulQuantity(quantity int) Money {
	if quantity <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(quantity)}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
