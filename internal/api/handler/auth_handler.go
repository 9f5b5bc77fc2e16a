package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type accountSummary struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Account accountSummary `json:"account"`
}

type registerResponse struct {
	Account *domain.Account `json:"account"`
	Token   string          `json:"token,omitempty"`
}

type registerStatusResponse struct {
	AccountExists bool `json:"accountExists"`
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		Account: accountSummary{
			ID:    account.ID,
			Email: account.Email,
			Role:  account.Role,
		},
	})
}

// RegisterStatus tells the admin panel whether to show the first-run form.
//
// @Summary      Whether any account exists
// @Tags         auth
// @Produce      json
// @Success      200  {object}  registerStatusResponse
// @Failure      500  {object}  errorResponse
// @Router       /auth/register [get]
func (h *AuthHandler) RegisterStatus(c echo.Context) error {
	exists, err := h.authService.AccountExists(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registerStatusResponse{AccountExists: exists})
}

// Register creates an account. The first account ever created becomes the
// super-admin and receives a token; later ones need a super-admin token.
//
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Account credentials"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), caller(c), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{Account: res.Account, Token: res.Token})
}
