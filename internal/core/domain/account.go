package domain

import (
	"strings"
	"time"
)

// Role is the privilege level of an Account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Account models a staff member allowed into the admin panel.
type Account struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	Role              Role       `json:"role"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// IsSuperAdmin reports whether the account holds the highest privilege level.
func (a *Account) IsSuperAdmin() bool {
	return a != nil && a.Role == RoleSuperAdmin
}

// SetPasswordHash replaces the stored hash wholesale and stamps the change time.
func (a *Account) SetPasswordHash(hash string, at time.Time) {
	a.PasswordHash = hash
	changed := at.UTC()
	a.PasswordChangedAt = &changed
	a.UpdatedAt = changed
}

// PasswordChangedAfter reports whether the password was rewritten strictly
// after the given instant, compared at millisecond precision.
func (a *Account) PasswordChangedAfter(t time.Time) bool {
	if a.PasswordChangedAt == nil {
		return false
	}
	return a.PasswordChangedAt.UnixMilli() > t.UnixMilli()
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountUpdate carries the optional fields of an account edit.
type AccountUpdate struct {
	AccountID       string
	Email           string
	CurrentPassword string
	NewPassword     string
}
