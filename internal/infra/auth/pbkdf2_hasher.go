// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// Iterations is the PBKDF2 work factor. Changing it invalidates every stored hash.
const Iterations = 10000

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256 with a per-password random salt.
type pbkdf2Hasher struct {
	random RandomSource
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher(random RandomSource) service.PasswordHasher {
	return &pbkdf2Hasher{random: random}
}

// Create derives a hash from password with a fresh salt.
func (h *pbkdf2Hasher) Create(password string) (entity.HashedPassword, error) {
	if strings.TrimSpace(password) == "" {
		return entity.HashedPassword{}, errors.Wrap(domainerrors.ErrInvalidInput, "password must not be blank")
	}

	salt, err := readRandom(h.random, entity.SaltSize)
	if err != nil {
		return entity.HashedPassword{}, err
	}

	return entity.NewHashedPassword(derive(password, salt), salt)
}

// CreateWithSalt derives a hash from password with the given salt.
func (h *pbkdf2Hasher) CreateWithSalt(password string, salt []byte) (entity.HashedPassword, error) {
	if strings.TrimSpace(password) == "" {
		return entity.HashedPassword{}, errors.Wrap(domainerrors.ErrInvalidInput, "password must not be blank")
	}
	if len(salt) != entity.SaltSize {
		return entity.HashedPassword{}, errors.Wrapf(domainerrors.ErrInvalidInput, "salt must be %d bytes, got %d", entity.SaltSize, len(salt))
	}

	return entity.NewHashedPassword(derive(password, salt), salt)
}

// Verify re-derives password with expected's salt and compares in constant time.
func (h *pbkdf2Hasher) Verify(password string, expected entity.HashedPassword) bool {
	if strings.TrimSpace(password) == "" {
		return false
	}

	actual, err := h.CreateWithSalt(password, expected.Salt())
	if err != nil {
		return false
	}

	return actual.SecureEqualTo(expected)
}

func derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, entity.HashSize, sha256.New)
}
