package middleware

import (
	"strings"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderTokenExpired is set on 401 responses caused only by access token expiry.
	HeaderTokenExpired = "Token-Expired"

	claimsContextKey = "auth.claims"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware provides middleware for bearer token authentication and role checks.
type AuthMiddleware struct {
	signer service.TokenSigner
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(signer service.TokenSigner) *AuthMiddleware {
	return &AuthMiddleware{signer: signer}
}

// Authenticate validates the bearer access token, expiry included, and stores its claims.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

			return errors.Wrap(domainerrors.ErrUnauthorized, "bearer token is missing")
		}

		claims, err := m.signer.ValidateAndGetClaims(strings.TrimSpace(authHeader[len(bearerPrefix):]), false)
		if err != nil {
			var tve *service.TokenValidationError
			if errors.As(err, &tve) && tve.Kind == service.ValidationExpired {
				c.Response().Header().Set(HeaderTokenExpired, "true")
			}
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)

			return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireRole admits the request if the authenticated token carries any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "role check without authentication")
			}

			if !claims.Roles.ContainsAny(roles...) {
				return errors.Wrapf(domainerrors.ErrInsufficientRole, "requires one of %v", roles)
			}

			return next(c)
		}
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*entity.AccessClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(*entity.AccessClaims)

	return claims, ok && claims != nil
}
