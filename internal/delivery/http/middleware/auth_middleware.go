// Package middleware contains HTTP middleware for the echo delivery.
package middleware

import (
	"strings"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the parsed
// claims on the context. Presentation failures and validation failures map
// to distinct AppErrors; neither echoes token material back to the client.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// Expose the caller identity to handlers and to the layers below.
		c.Set(string(deliverycontext.KeyClaims), claims)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithClaims(c.Request().Context(), claims),
		))

		return next(c)
	}
}

// ActiveUser returns the claims Authenticate stored for the current
// request, or nil on routes the middleware never ran on.
func ActiveUser(c echo.Context) *service.Claims {
	claims, ok := c.Get(string(deliverycontext.KeyClaims)).(*service.Claims)
	if !ok {
		return nil
	}

	return claims
}
