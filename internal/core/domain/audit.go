package domain

import "time"

// AuditAction names a security-relevant operation on accounts.
type AuditAction string

const (
	AuditLoginSucceeded  AuditAction = "login_succeeded"
	AuditLoginFailed     AuditAction = "login_failed"
	AuditLoginThrottled  AuditAction = "login_throttled"
	AuditAccountCreated  AuditAction = "account_created"
	AuditAccountUpdated  AuditAction = "account_updated"
	AuditAccountDeleted  AuditAction = "account_deleted"
	AuditPasswordChanged AuditAction = "password_changed"
)

// AuditEvent records who did what to which account.
type AuditEvent struct {
	Action    AuditAction
	ActorID   string // empty for anonymous callers
	AccountID string
	Email     string
	Timestamp time.Time
	Details   string // optional
}
