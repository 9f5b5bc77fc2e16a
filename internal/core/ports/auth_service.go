package ports

import (
	"context"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
)

// RegisterResult is returned by AuthService.Register. Token is only set when
// the call performed the bootstrap transition.
type RegisterResult struct {
	Account   *domain.Account
	Token     string
	Bootstrap bool
}

// Principal is the outcome of resolving a request's bearer token.
// Account is nil for anonymous callers; Err is set when a token was presented
// but could not be verified.
type Principal struct {
	Account *domain.Account
	Err     error
}

// Authenticated reports whether the principal resolved to a live account.
func (p Principal) Authenticated() bool {
	return p.Err == nil && p.Account != nil
}

// AuthService covers login, registration and account administration.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	AccountExists(ctx context.Context) (bool, error)
	Register(ctx context.Context, caller Principal, email, password string) (*RegisterResult, error)
	ListAccounts(ctx context.Context, caller Principal) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, caller Principal, update domain.AccountUpdate) (*domain.Account, error)
	DeleteAccount(ctx context.Context, caller Principal, accountID string) error
}

// TokenVerifier resolves a bearer token to the live account it was issued for.
type TokenVerifier interface {
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
}
