package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/api/middleware"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// caller returns the principal resolved by the Authenticate middleware.
func caller(c echo.Context) ports.Principal {
	return middleware.PrincipalFrom(c)
}

// bind decodes the request into req and runs struct validation when a
// validator is installed.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
