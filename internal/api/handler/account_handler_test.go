package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

func TestAccountHandler_List(t *testing.T) {
	stub := &stubAuthService{
		listFn: func(context.Context, ports.Principal) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: "acc-1", Email: "root@studio.com", Role: domain.RoleSuperAdmin, PasswordHash: "$2a$10$secret"},
			}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/auth/users", "")

	if err := NewAccountHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "$2a$") || strings.Contains(body, "passwordHash") {
		t.Fatalf("hash must not be serialised: %s", body)
	}
}

func TestAccountHandler_Update(t *testing.T) {
	var got domain.AccountUpdate
	stub := &stubAuthService{
		updateFn: func(_ context.Context, _ ports.Principal, upd domain.AccountUpdate) (*domain.Account, error) {
			got = upd
			return &domain.Account{ID: upd.AccountID, Email: upd.Email, Role: domain.RoleAdmin}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPatch, "/auth/users",
		`{"userId":"acc-2","email":"new@studio.com","currentPassword":"old-pass","newPassword":"new-pass"}`)

	if err := NewAccountHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := domain.AccountUpdate{AccountID: "acc-2", Email: "new@studio.com", CurrentPassword: "old-pass", NewPassword: "new-pass"}
	if got != want {
		t.Fatalf("unexpected update: %+v", got)
	}
}

func TestAccountHandler_Update_RequiresUserID(t *testing.T) {
	c, _ := newJSONContext(http.MethodPatch, "/auth/users", `{"email":"new@studio.com"}`)

	err := NewAccountHandler(&stubAuthService{}).Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "userId" {
		t.Fatalf("expected validation error on userId, got %v", err)
	}
}

func TestAccountHandler_Update_BadEmail(t *testing.T) {
	c, _ := newJSONContext(http.MethodPatch, "/auth/users", `{"userId":"acc-2","email":"not-an-email"}`)

	err := NewAccountHandler(&stubAuthService{}).Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("expected validation error on email, got %v", err)
	}
}

func TestAccountHandler_Delete(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"id in body", "/auth/users", `{"userId":"acc-2"}`},
		{"id in query", "/auth/users?userId=acc-2", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var deleted string
			stub := &stubAuthService{
				deleteFn: func(_ context.Context, _ ports.Principal, id string) error {
					deleted = id
					return nil
				},
			}
			c, rec := newJSONContext(http.MethodDelete, tc.target, tc.body)

			if err := NewAccountHandler(stub).Delete(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if deleted != "acc-2" {
				t.Fatalf("expected acc-2 deleted, got %q", deleted)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
		})
	}
}

func TestAccountHandler_Delete_SuperAdminProtected(t *testing.T) {
	stub := &stubAuthService{
		deleteFn: func(context.Context, ports.Principal, string) error {
			return domain.ErrSuperAdminProtected
		},
	}
	c, _ := newJSONContext(http.MethodDelete, "/auth/users", `{"userId":"acc-1"}`)

	if err := NewAccountHandler(stub).Delete(c); !errors.Is(err, domain.ErrSuperAdminProtected) {
		t.Fatalf("expected ErrSuperAdminProtected, got %v", err)
	}
}
