// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single value object.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying one-way hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash.
	// A mismatch is (false, nil); a malformed hash or primitive failure is an error.
	Compare(password, hash string) (bool, error)
}
