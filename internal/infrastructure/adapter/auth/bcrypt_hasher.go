package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the work factor used by existing stored hashes
const hashCost = 10

// BcryptHasher implements core.PasswordHasher using bcrypt
type BcryptHasher struct{}

// NewBcryptHasher creates a new BcryptHasher instance
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash derives a bcrypt hash from a plaintext password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether the plaintext password matches the stored hash
func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
