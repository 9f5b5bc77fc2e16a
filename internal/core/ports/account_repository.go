package ports

import (
	"context"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
)

// AccountRepository is the credential store.
type AccountRepository interface {
	Count(ctx context.Context) (int64, error)
	// CreateBootstrap inserts the first super-admin. It fails with
	// domain.ErrBootstrapClosed when a super-admin already exists and with
	// domain.ErrEmailTaken on an email collision; the check and the insert are
	// a single atomic write.
	CreateBootstrap(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

// LoginThrottle limits repeated failed logins per email.
type LoginThrottle interface {
	Allowed(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuditSink accepts audit events. Implementations must not block the caller.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
