package order

import (
	"fmt"

	"cafedelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order. Payment itself is
// simulated; the method is recorded on the order for the kitchen and the
// courier.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentCard is card on delivery.
	PaymentCard

	// PaymentTransfer is a bank transfer settled before delivery.
	PaymentTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:  "UNKNOWN",
		PaymentCash:     "EFECTIVO",
		PaymentCard:     "TARJETA",
		PaymentTransfer: "TRANSFERENCIA",
	}
}

// ParsePaymentMethod converts the wire representation into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s && method != PaymentUnknown {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate rejects PaymentUnknown and out-of-range values.
func (p PaymentMethod) Validate() error {
	if p != PaymentCash && p != PaymentCard && p != PaymentTransfer {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// String returns the wire representation of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
