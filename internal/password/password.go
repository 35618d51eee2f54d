// Package password wraps bcrypt hashing behind a small service so the
// cost factor is injected once and the rest of the code never touches
// the algorithm directly.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies plaintext passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewHasher returns a bcrypt-backed Hasher. A cost of 0 selects
// bcrypt.DefaultCost. The cost is embedded in every produced hash, so
// changing it later only affects new hashes; stored ones keep verifying.
func NewHasher(cost int) Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt hash. bcrypt generates a fresh random
// salt per call, so hashing the same input twice yields different strings.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed
// hashes verify as false rather than returning an error; the comparison
// is constant time.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
