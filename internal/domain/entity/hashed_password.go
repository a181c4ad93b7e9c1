package entity

import (
	"crypto/subtle"
	"encoding/base64"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
)

const (
	// SaltSize is the size in bytes of every password salt.
	SaltSize = 16
	// HashSize is the size in bytes of every derived password hash.
	HashSize = 20
)

// HashedPassword is a salted password hash. It is immutable once created;
// the array types pin the hash and salt sizes.
type HashedPassword struct {
	hash [HashSize]byte
	salt [SaltSize]byte
}

// NewHashedPassword builds a HashedPassword from raw hash and salt bytes.
func NewHashedPassword(hash, salt []byte) (HashedPassword, error) {
	var hp HashedPassword
	if len(hash) != HashSize {
		return hp, errors.Wrapf(domainerrors.ErrInvalidInput, "hash must be %d bytes, got %d", HashSize, len(hash))
	}
	if len(salt) != SaltSize {
		return hp, errors.Wrapf(domainerrors.ErrInvalidInput, "salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	copy(hp.hash[:], hash)
	copy(hp.salt[:], salt)

	return hp, nil
}

// ParseHashedPassword decodes the output of AsBase64String.
// The first SaltSize bytes are the salt, the remaining HashSize bytes the hash.
func ParseHashedPassword(encoded string) (HashedPassword, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return HashedPassword{}, errors.Wrap(domainerrors.ErrInvalidInput, "hashed password is not valid base64")
	}
	if len(raw) != SaltSize+HashSize {
		return HashedPassword{}, errors.Wrapf(domainerrors.ErrInvalidInput, "hashed password must decode to %d bytes, got %d", SaltSize+HashSize, len(raw))
	}

	return NewHashedPassword(raw[SaltSize:], raw[:SaltSize])
}

// Hash returns a copy of the derived hash bytes.
func (p HashedPassword) Hash() []byte {
	out := make([]byte, HashSize)
	copy(out, p.hash[:])

	return out
}

// Salt returns a copy of the salt bytes.
func (p HashedPassword) Salt() []byte {
	out := make([]byte, SaltSize)
	copy(out, p.salt[:])

	return out
}

// IsZero reports whether p was never populated.
func (p HashedPassword) IsZero() bool {
	return p == HashedPassword{}
}

// AsBase64String encodes salt followed by hash as standard base64.
func (p HashedPassword) AsBase64String() string {
	return base64.StdEncoding.EncodeToString(p.combined())
}

// SecureEqualTo compares salt⧺hash of both values in time that depends only on length.
func (p HashedPassword) SecureEqualTo(other HashedPassword) bool {
	return subtle.ConstantTimeCompare(p.combined(), other.combined()) == 1
}

func (p HashedPassword) combined() []byte {
	out := make([]byte, 0, SaltSize+HashSize)
	out = append(out, p.salt[:]...)
	out = append(out, p.hash[:]...)

	return out
}
