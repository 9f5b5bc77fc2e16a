package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const principalKey = "principal"

// Authenticate resolves the bearer token, if any, and stores the resulting
// ports.Principal in the context. It never rejects a request by itself:
// registration must see anonymous callers, and RequireAuth or RBAC decide
// for everything else.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				c.Set(principalKey, ports.Principal{})
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				c.Set(principalKey, ports.Principal{Err: domain.ErrUnauthorized})
				return next(c)
			}

			account, err := verifier.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				c.Set(principalKey, ports.Principal{Err: err})
				return next(c)
			}

			c.Set(principalKey, ports.Principal{Account: account})
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal resolved by Authenticate. Requests that
// did not pass through it are anonymous.
func PrincipalFrom(c echo.Context) ports.Principal {
	p, _ := c.Get(principalKey).(ports.Principal)
	return p
}

// RequireAuth rejects requests without a live account behind their token.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authenticated(PrincipalFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func authenticated(p ports.Principal) error {
	if p.Err != nil {
		return p.Err
	}
	if p.Account == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	return nil
}
