package ports

import (
	"cafedelivery/internal/core/domain/model/order"
)

// Identity is the authenticated caller of an operation, as established by
// the transport layer.
type Identity struct {
	// UserID is the opaque subject identifier.
	UserID string
	// Role is the caller's role used for transition gating.
	Role order.Role
}

// IdentityProvider verifies a bearer credential and resolves it to an
// Identity. Verification failures come back as validation errors.
type IdentityProvider interface {
	Verify(token string) (Identity, error)
}
