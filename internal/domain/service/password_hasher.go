// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "gatekeeper/internal/domain/entity"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// Create derives a hash from a plaintext password with a fresh random salt.
	Create(password string) (entity.HashedPassword, error)

	// CreateWithSalt derives a hash with a caller-supplied salt. It is deterministic.
	CreateWithSalt(password string, salt []byte) (entity.HashedPassword, error)

	// Verify re-derives the hash of password with expected's salt and compares in constant time.
	Verify(password string, expected entity.HashedPassword) bool
}
