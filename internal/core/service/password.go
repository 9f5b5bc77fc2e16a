package service

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/metrics"
)

const (
	minPasswordLength = 6
	maxPasswordBytes  = 72 // bcrypt ignores anything past 72 bytes
)

// PasswordHasher hashes and verifies account passwords with bcrypt.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// NewPasswordHasher returns a hasher with the given work factor. Out of range
// costs fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted bcrypt digest of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if err := ValidatePassword("password", plaintext); err != nil {
		return "", err
	}
	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Any comparison error,
// including a malformed hash, is a failed verification.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Burn spends roughly the same time as Verify so unknown emails and wrong
// passwords are indistinguishable by latency.
func (h *PasswordHasher) Burn(plaintext string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plaintext))
}

// ValidatePassword enforces the password policy.
func ValidatePassword(field, plaintext string) error {
	if len(plaintext) < minPasswordLength {
		return domain.NewValidationError(field, "must be at least %d characters", minPasswordLength)
	}
	if len(plaintext) > maxPasswordBytes {
		return domain.NewValidationError(field, "must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}
