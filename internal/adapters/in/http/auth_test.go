package http

import (
	"testing"
	"time"

	"cafedelivery/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestVerify_ValidToken_ResolvesIdentity(t *testing.T) {
	provider := NewJWTIdentityProvider(testSecret)
	token := signedToken(t, jwt.MapClaims{
		"sub":  "customer-7",
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	identity, err := provider.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "customer-7", identity.UserID)
	assert.Equal(t, order.RoleCustomer, identity.Role)
}

func TestVerify_CourierRole(t *testing.T) {
	provider := NewJWTIdentityProvider(testSecret)
	token := signedToken(t, jwt.MapClaims{"sub": "rider-1", "role": "courier"}, testSecret)

	identity, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, order.RoleCourier, identity.Role)
}

func TestVerify_WrongSecret_Rejected(t *testing.T) {
	provider := NewJWTIdentityProvider(testSecret)
	token := signedToken(t, jwt.MapClaims{"sub": "customer-7", "role": "customer"}, []byte("other"))

	_, err := provider.Verify(token)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken_Rejected(t *testing.T) {
	provider := NewJWTIdentityProvider(testSecret)
	token := signedToken(t, jwt.MapClaims{
		"sub":  "customer-7",
		"role": "customer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, err := provider.Verify(token)
	assert.Error(t, err)
}

func TestVerify_MissingSubject_Rejected(t *testing.T) {
	provider := NewJWTIdentityProvider(testSecret)
	token := signedToken(t, jwt.MapClaims{"role": "customer"}, testSecret)

	_, err := provider.Verify(token)
	assert.Error(t, err)
}

func TestVerify_UnknownRole_Rejected(t *testing.T) {
	provider := NewJWTIdentityProvider(testSecret)
	token := signedToken(t, jwt.MapClaims{"sub": "customer-7", "role": "superuser"}, testSecret)

	_, err := provider.Verify(token)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	token, err := bearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = bearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = bearerToken("")
	assert.Error(t, err)
}
