package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// AccountHandler serves the super-admin account management routes.
type AccountHandler struct {
	authService ports.AuthService
}

func NewAccountHandler(authService ports.AuthService) *AccountHandler {
	return &AccountHandler{authService: authService}
}

type updateAccountRequest struct {
	UserID          string `json:"userId"          validate:"required"`
	Email           string `json:"email"           validate:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type deleteAccountRequest struct {
	UserID string `json:"userId" query:"userId" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List returns every account without password hashes.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.authService.ListAccounts(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Update changes an account's email and/or password.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/users [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	account, err := h.authService.UpdateAccount(c.Request().Context(), caller(c), domain.AccountUpdate{
		AccountID:       req.UserID,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes an admin account. The id may come in the body or the query.
//
// @Summary      Delete an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  false  "Account id"
// @Success      200     {object}  messageResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /auth/users [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	var req deleteAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authService.DeleteAccount(c.Request().Context(), caller(c), req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}
