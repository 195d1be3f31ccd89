package http

import (
	"fmt"
	"net/http"
	"strings"

	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/core/ports"
	"cafedelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identityContextKey is where the auth middleware stores the verified caller.
const identityContextKey = "identity"

// JWTIdentityProvider verifies HMAC-signed bearer tokens.
// The subject claim is the caller's opaque user id and the "role" claim
// carries the wire form of the caller's role.
type JWTIdentityProvider struct {
	secret []byte
}

// NewJWTIdentityProvider creates a provider verifying tokens signed with secret.
func NewJWTIdentityProvider(secret []byte) *JWTIdentityProvider {
	return &JWTIdentityProvider{secret: secret}
}

// Verify parses and validates the token and resolves the caller's identity.
func (p *JWTIdentityProvider) Verify(token string) (ports.Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		return ports.Identity{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ports.Identity{}, errs.NewValueIsInvalidError("token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return ports.Identity{}, errs.NewValueIsRequiredError("token subject")
	}

	roleClaim, _ := claims["role"].(string)
	role, err := order.ParseRole(roleClaim)
	if err != nil {
		return ports.Identity{}, err
	}

	return ports.Identity{UserID: subject, Role: role}, nil
}

// AuthMiddleware authenticates requests with the given provider and stores
// the resolved identity on the request context.
func AuthMiddleware(provider ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "Missing or malformed credentials"))
			}

			identity, err := provider.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "Invalid credentials"))
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errs.NewValueIsRequiredError("bearer token")
	}
	return strings.TrimPrefix(header, prefix), nil
}

// identityFrom returns the identity stored by AuthMiddleware.
func identityFrom(c echo.Context) ports.Identity {
	identity, _ := c.Get(identityContextKey).(ports.Identity)
	return identity
}
