package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// StatisticsHandler serves the headline numbers block.
type StatisticsHandler struct {
	service ports.StatisticsService
}

func NewStatisticsHandler(service ports.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// Current handles GET /statistics. Defaults are served when nothing is stored.
//
// @Summary      Current statistics
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  domain.Statistics
// @Router       /statistics [get]
func (h *StatisticsHandler) Current(c echo.Context) error {
	st, err := h.service.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *StatisticsHandler) Get(c echo.Context) error {
	st, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// @Summary      Create statistics
// @Tags         statistics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      statisticsRequest  true  "Statistics"
// @Success      201   {object}  domain.Statistics
// @Failure      400   {object}  errorResponse
// @Router       /statistics [post]
func (h *StatisticsHandler) Create(c echo.Context) error {
	var req statisticsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	st, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, st)
}

// Update handles PUT /statistics/:id. An id of "undefined" creates a new
// document, which is what the admin panel sends before the first save.
//
// @Summary      Update statistics
// @Tags         statistics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Statistics id"
// @Param        body  body      statisticsRequest  true  "Statistics"
// @Success      200   {object}  domain.Statistics
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /statistics/{id} [put]
func (h *StatisticsHandler) Update(c echo.Context) error {
	var req statisticsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	st, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *StatisticsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "statistics deleted"})
}
