package core

// PasswordHasher hashes and verifies passwords. Comparison must be
// constant-time; raw strings are never compared.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
