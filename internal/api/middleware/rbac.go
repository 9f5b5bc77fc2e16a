package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
)

// RBAC enforces role-based access control. Unauthenticated callers get 401,
// authenticated callers outside allowedRoles get 403.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if err := authenticated(p); err != nil {
				return err
			}
			if _, ok := allowed[p.Account.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
