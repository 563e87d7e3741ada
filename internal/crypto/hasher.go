// Package crypto provides the one-way password transform used when storing
// and verifying user credentials.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for password hashing and verification.
// It abstracts the underlying algorithm so that services and middleware do
// not depend on bcrypt directly.
type PasswordHasher interface {
	// Hash generates a salted one-way digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the given digest.
	Verify(password, digest string) bool
}

// bcryptHasher implements [PasswordHasher] using bcrypt. The per-call random
// salt is embedded in the digest and the work factor is tunable via cost.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost outside the valid bcrypt range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify delegates to bcrypt.CompareHashAndPassword, which performs a
// constant-time comparison of the recomputed digest.
func (h *bcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
