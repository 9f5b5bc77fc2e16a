package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
	"github.com/atelier-interiors/studio-cms/internal/metrics"
)

// AuthService implements login, registration (including the bootstrap of the
// first super-admin), account administration and token verification.
type AuthService struct {
	repo     ports.AccountRepository
	hasher   *PasswordHasher
	tokens   *TokenManager
	throttle ports.LoginThrottle
	audit    ports.AuditSink
	log      zerolog.Logger
	now      func() time.Time
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithLoginThrottle enables failed-login lockout.
func WithLoginThrottle(t ports.LoginThrottle) AuthOption {
	return func(s *AuthService) { s.throttle = t }
}

// WithAuditSink sends account events to sink.
func WithAuditSink(sink ports.AuditSink) AuthOption {
	return func(s *AuthService) { s.audit = sink }
}

// WithClock replaces the time source used for account timestamps.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(repo ports.AccountRepository, hasher *PasswordHasher, tokens *TokenManager, log zerolog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies credentials and mints a token. Unknown emails and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("", "email and password are required")
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allowed(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
		} else if !allowed {
			metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
			s.record(domain.AuditEvent{Action: domain.AuditLoginThrottled, Email: email})
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, fmt.Errorf("login: %w", err)
		}
		s.hasher.Burn(password)
		return "", nil, s.loginFailed(ctx, email, "")
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", nil, s.loginFailed(ctx, email, account.ID)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuditEvent{Action: domain.AuditLoginSucceeded, ActorID: account.ID, AccountID: account.ID, Email: email})
	return token, account, nil
}

func (s *AuthService) loginFailed(ctx context.Context, email, accountID string) error {
	metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to record login failure")
		}
	}
	s.record(domain.AuditEvent{Action: domain.AuditLoginFailed, AccountID: accountID, Email: email})
	return domain.ErrInvalidCredentials
}

// AccountExists reports whether the bootstrap transition has happened.
func (s *AuthService) AccountExists(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	return n > 0, nil
}

// Register creates an account. While the store is empty no authentication is
// needed and the account becomes the super-admin, receiving a token right
// away. Afterwards only a super-admin caller may create accounts, and those
// are always plain admins.
func (s *AuthService) Register(ctx context.Context, caller ports.Principal, email, password string) (*ports.RegisterResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("", "email and password are required")
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}
	if n == 0 {
		if err := ValidatePassword("password", password); err != nil {
			return nil, err
		}
		res, err := s.bootstrap(ctx, email, password)
		if err == nil || !errors.Is(err, domain.ErrBootstrapClosed) {
			return res, err
		}
		// Lost the race against a concurrent bootstrap; continue as a gated request.
		s.log.Info().Msg("bootstrap already completed by a concurrent request")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	if err := ValidatePassword("password", password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("gated").Inc()
	s.record(domain.AuditEvent{Action: domain.AuditAccountCreated, ActorID: caller.Account.ID, AccountID: created.ID, Email: created.Email})
	s.log.Info().Str("account_id", created.ID).Str("created_by", caller.Account.ID).Msg("admin account created")
	return &ports.RegisterResult{Account: created}, nil
}

// Bootstrap runs only the first-account transition. It fails with
// domain.ErrBootstrapClosed once any account exists.
func (s *AuthService) Bootstrap(ctx context.Context, email, password string) (*ports.RegisterResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("", "email and password are required")
	}
	if err := ValidatePassword("password", password); err != nil {
		return nil, err
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}
	if n > 0 {
		return nil, domain.ErrBootstrapClosed
	}
	return s.bootstrap(ctx, email, password)
}

func (s *AuthService) bootstrap(ctx context.Context, email, password string) (*ports.RegisterResult, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	created, err := s.repo.CreateBootstrap(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("bootstrap").Inc()
	s.record(domain.AuditEvent{Action: domain.AuditAccountCreated, AccountID: created.ID, Email: created.Email, Details: "bootstrap"})
	s.log.Info().Str("account_id", created.ID).Msg("super-admin bootstrapped")
	return &ports.RegisterResult{Account: created, Token: token, Bootstrap: true}, nil
}

// ListAccounts returns every account. Super-admin only.
func (s *AuthService) ListAccounts(ctx context.Context, caller ports.Principal) ([]*domain.Account, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// UpdateAccount changes the email and/or password of any account.
// Super-admin only. A new password stamps PasswordChangedAt, which revokes
// every token issued for that account before now.
func (s *AuthService) UpdateAccount(ctx context.Context, caller ports.Principal, upd domain.AccountUpdate) (*domain.Account, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	if upd.AccountID == "" {
		return nil, domain.NewValidationError("userId", "is required")
	}

	account, err := s.repo.FindByID(ctx, upd.AccountID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()

	if email := domain.NormalizeEmail(upd.Email); email != "" && email != account.Email {
		other, err := s.repo.FindByEmail(ctx, email)
		switch {
		case err == nil && other.ID != account.ID:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrAccountNotFound):
			return nil, fmt.Errorf("update account: %w", err)
		}
		account.Email = email
	}

	passwordChanged := false
	if upd.NewPassword != "" {
		if err := ValidatePassword("newPassword", upd.NewPassword); err != nil {
			return nil, err
		}
		self := account.ID == caller.Account.ID
		if upd.CurrentPassword != "" || self {
			if !s.hasher.Verify(upd.CurrentPassword, account.PasswordHash) {
				return nil, domain.ErrInvalidCredentials
			}
		}
		hash, err := s.hasher.Hash(upd.NewPassword)
		if err != nil {
			return nil, err
		}
		account.SetPasswordHash(hash, now)
		passwordChanged = true
	}
	account.UpdatedAt = now

	updated, err := s.repo.Update(ctx, account)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEvent{Action: domain.AuditAccountUpdated, ActorID: caller.Account.ID, AccountID: updated.ID, Email: updated.Email})
	if passwordChanged {
		s.record(domain.AuditEvent{Action: domain.AuditPasswordChanged, ActorID: caller.Account.ID, AccountID: updated.ID, Email: updated.Email})
	}
	return updated, nil
}

// DeleteAccount permanently removes a non-super-admin account. Super-admin only.
func (s *AuthService) DeleteAccount(ctx context.Context, caller ports.Principal, accountID string) error {
	if err := requireSuperAdmin(caller); err != nil {
		return err
	}
	if accountID == "" {
		return domain.NewValidationError("userId", "is required")
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsSuperAdmin() {
		return domain.ErrSuperAdminProtected
	}
	if err := s.repo.Delete(ctx, accountID); err != nil {
		return err
	}

	s.record(domain.AuditEvent{Action: domain.AuditAccountDeleted, ActorID: caller.Account.ID, AccountID: account.ID, Email: account.Email})
	s.log.Info().Str("account_id", account.ID).Str("deleted_by", caller.Account.ID).Msg("account deleted")
	return nil
}

// Authenticate verifies token and re-reads the account it names. The token is
// rejected when the account is gone or its password changed after issuance.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	account, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.TokenVerificationsTotal.WithLabelValues("unknown_account").Inc()
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if account.PasswordChangedAfter(claims.IssuedAtTime()) {
		metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
		return nil, domain.ErrUnauthorized
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return account, nil
}

func (s *AuthService) record(event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	s.audit.Record(event)
}

// requireSuperAdmin keeps "no or bad token" (401) apart from "valid token,
// wrong role" (403).
func requireSuperAdmin(caller ports.Principal) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !caller.Account.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
