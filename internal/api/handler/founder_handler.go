package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// FounderHandler serves the singleton founder bio.
type FounderHandler struct {
	service ports.FounderService
}

func NewFounderHandler(service ports.FounderService) *FounderHandler {
	return &FounderHandler{service: service}
}

// Get handles GET /founder.
//
// @Summary      Get founder data
// @Tags         founder
// @Produce      json
// @Success      200  {object}  domain.Founder
// @Failure      404  {object}  errorResponse
// @Router       /founder [get]
func (h *FounderHandler) Get(c echo.Context) error {
	f, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Create handles POST /founder and replaces any existing founder data.
//
// @Summary      Replace founder data
// @Tags         founder
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      founderRequest  true  "Founder data"
// @Success      201   {object}  domain.Founder
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /founder [post]
func (h *FounderHandler) Create(c echo.Context) error {
	var req founderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

// Upsert handles PUT /founder.
//
// @Summary      Update founder data
// @Tags         founder
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      founderRequest  true  "Founder data"
// @Success      200   {object}  domain.Founder
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /founder [put]
func (h *FounderHandler) Upsert(c echo.Context) error {
	var req founderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.service.Upsert(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}
