package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

type VideoHandler struct {
	service ports.VideoService
}

func NewVideoHandler(service ports.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// @Summary      List videos
// @Tags         videos
// @Produce      json
// @Param        active  query    string  false  "false to include inactive videos"
// @Success      200     {array}  domain.Video
// @Router       /videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	videos, err := h.service.List(c.Request().Context(), includeInactive(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) Get(c echo.Context) error {
	v, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// @Summary      Create a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      videoRequest  true  "Video"
// @Success      201   {object}  domain.Video
// @Failure      400   {object}  errorResponse
// @Router       /videos [post]
func (h *VideoHandler) Create(c echo.Context) error {
	var req videoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *VideoHandler) Update(c echo.Context) error {
	var req videoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VideoHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "video deleted"})
}
