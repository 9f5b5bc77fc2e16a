package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Account, error)
	existsFn   func(ctx context.Context) (bool, error)
	registerFn func(ctx context.Context, caller ports.Principal, email, password string) (*ports.RegisterResult, error)
	listFn     func(ctx context.Context, caller ports.Principal) ([]*domain.Account, error)
	updateFn   func(ctx context.Context, caller ports.Principal, upd domain.AccountUpdate) (*domain.Account, error)
	deleteFn   func(ctx context.Context, caller ports.Principal, id string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) AccountExists(ctx context.Context) (bool, error) {
	return s.existsFn(ctx)
}

func (s *stubAuthService) Register(ctx context.Context, caller ports.Principal, email, password string) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, caller, email, password)
}

func (s *stubAuthService) ListAccounts(ctx context.Context, caller ports.Principal) ([]*domain.Account, error) {
	return s.listFn(ctx, caller)
}

func (s *stubAuthService) UpdateAccount(ctx context.Context, caller ports.Principal, upd domain.AccountUpdate) (*domain.Account, error) {
	return s.updateFn(ctx, caller, upd)
}

func (s *stubAuthService) DeleteAccount(ctx context.Context, caller ports.Principal, id string) error {
	return s.deleteFn(ctx, caller, id)
}

// newJSONContext builds an echo context with the validator installed, the
// way the router configures it.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Account, error) {
			if email != "ed@studio.com" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "signed", &domain.Account{ID: "acc-2", Email: email, Role: domain.RoleAdmin, PasswordHash: "$2a$10$x"}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ed@studio.com","password":"secret123"}`)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decode(t, rec)
	if resp["token"] != "signed" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	account, ok := resp["account"].(map[string]any)
	if !ok {
		t.Fatalf("expected account in response")
	}
	if account["id"] != "acc-2" || account["email"] != "ed@studio.com" || account["role"] != "admin" {
		t.Fatalf("unexpected account payload: %+v", account)
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			t.Fatalf("service must not be called")
			return "", nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ed@studio.com"}`)

	err := NewAuthHandler(stub).Login(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected validation error on password, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":`)

	err := NewAuthHandler(&stubAuthService{}).Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ed@studio.com","password":"nope"}`)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_RegisterStatus(t *testing.T) {
	stub := &stubAuthService{
		existsFn: func(context.Context) (bool, error) { return true, nil },
	}
	c, rec := newJSONContext(http.MethodGet, "/auth/register", "")

	if err := NewAuthHandler(stub).RegisterStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode(t, rec); resp["accountExists"] != true {
		t.Fatalf("expected accountExists=true, got %+v", resp)
	}
}

func TestAuthHandler_Register_Bootstrap(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, caller ports.Principal, email, password string) (*ports.RegisterResult, error) {
			if caller.Account != nil {
				t.Fatalf("expected anonymous caller")
			}
			return &ports.RegisterResult{
				Account:   &domain.Account{ID: "acc-1", Email: email, Role: domain.RoleSuperAdmin},
				Token:     "first-token",
				Bootstrap: true,
			}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"secret123"}`)

	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["token"] != "first-token" {
		t.Fatalf("expected bootstrap token, got %+v", resp)
	}
	account := resp["account"].(map[string]any)
	if account["role"] != "super-admin" {
		t.Fatalf("expected super-admin, got %v", account["role"])
	}
}

func TestAuthHandler_Register_GatedHasNoToken(t *testing.T) {
	root := &domain.Account{ID: "acc-1", Role: domain.RoleSuperAdmin}
	stub := &stubAuthService{
		registerFn: func(_ context.Context, caller ports.Principal, email, _ string) (*ports.RegisterResult, error) {
			if caller.Account != root {
				t.Fatalf("caller principal not forwarded")
			}
			return &ports.RegisterResult{Account: &domain.Account{ID: "acc-2", Email: email, Role: domain.RoleAdmin}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"email":"b@x.com","password":"secret123"}`)
	c.Set("principal", ports.Principal{Account: root})

	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if _, ok := decode(t, rec)["token"]; ok {
		t.Fatalf("gated registration must not return a token")
	}
}

func TestAuthHandler_Register_RejectsMalformedEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.Principal, string, string) (*ports.RegisterResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"secret123"}`)

	err := NewAuthHandler(stub).Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("expected validation error on email, got %v", err)
	}
}

func TestAuthHandler_Register_PropagatesGateErrors(t *testing.T) {
	for _, want := range []error{domain.ErrUnauthorized, domain.ErrForbidden, domain.ErrEmailTaken} {
		stub := &stubAuthService{
			registerFn: func(context.Context, ports.Principal, string, string) (*ports.RegisterResult, error) {
				return nil, want
			},
		}
		c, _ := newJSONContext(http.MethodPost, "/auth/register", `{"email":"b@x.com","password":"secret123"}`)
		if err := NewAuthHandler(stub).Register(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}
