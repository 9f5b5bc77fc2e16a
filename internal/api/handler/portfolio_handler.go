package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// PortfolioHandler handles HTTP requests for portfolio items.
type PortfolioHandler struct {
	service ports.PortfolioService
}

func NewPortfolioHandler(service ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// List handles GET /portfolio.
//
// @Summary      List portfolio items
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "Category name, All for every category"
// @Param        active    query     string  false  "false to include inactive items"
// @Success      200       {array}   domain.PortfolioItem
// @Router       /portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), ports.PortfolioFilter{
		Category:        c.QueryParam("category"),
		IncludeInactive: includeInactive(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /portfolio/:id.
//
// @Summary      Get a portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.PortfolioItem
// @Failure      404  {object}  errorResponse
// @Router       /portfolio/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /portfolio.
//
// @Summary      Create a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      portfolioRequest  true  "Portfolio item"
// @Success      201   {object}  domain.PortfolioItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	var req portfolioRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /portfolio/:id.
//
// @Summary      Update a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Item id"
// @Param        body  body      portfolioRequest  true  "Portfolio item"
// @Success      200   {object}  domain.PortfolioItem
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /portfolio/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	var req portfolioRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /portfolio/:id.
//
// @Summary      Delete a portfolio item
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "portfolio item deleted"})
}

// includeInactive reads the admin panel's ?active=false switch.
func includeInactive(c echo.Context) bool {
	return c.QueryParam("active") == "false"
}
