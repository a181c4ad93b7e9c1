package entity

import (
	"bytes"
	"encoding/base64"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialBytes(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}

	return b
}

func TestHashedPassword_RoundTrip(t *testing.T) {
	hash := sequentialBytes(HashSize, 100)
	salt := sequentialBytes(SaltSize, 1)

	hp, err := NewHashedPassword(hash, salt)
	require.NoError(t, err)

	parsed, err := ParseHashedPassword(hp.AsBase64String())
	require.NoError(t, err)

	assert.Equal(t, hp, parsed)
	assert.Equal(t, hash, parsed.Hash())
	assert.Equal(t, salt, parsed.Salt())
}

func TestHashedPassword_AsBase64String_SaltFirst(t *testing.T) {
	hash := sequentialBytes(HashSize, 100)
	salt := sequentialBytes(SaltSize, 1)

	hp, err := NewHashedPassword(hash, salt)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(hp.AsBase64String())
	require.NoError(t, err)
	require.Len(t, raw, SaltSize+HashSize)

	assert.True(t, bytes.Equal(salt, raw[:SaltSize]))
	assert.True(t, bytes.Equal(hash, raw[SaltSize:]))
}

func TestNewHashedPassword_WrongSizes(t *testing.T) {
	_, err := NewHashedPassword(make([]byte, HashSize-1), make([]byte, SaltSize))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = NewHashedPassword(make([]byte, HashSize), make([]byte, SaltSize+1))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestParseHashedPassword_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not base64", encoded: "***"},
		{name: "too short", encoded: base64.StdEncoding.EncodeToString(make([]byte, SaltSize+HashSize-1))},
		{name: "too long", encoded: base64.StdEncoding.EncodeToString(make([]byte, SaltSize+HashSize+1))},
		{name: "empty", encoded: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHashedPassword(tt.encoded)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestHashedPassword_SecureEqualTo(t *testing.T) {
	hash := sequentialBytes(HashSize, 100)
	salt := sequentialBytes(SaltSize, 1)

	a, err := NewHashedPassword(hash, salt)
	require.NoError(t, err)
	b, err := NewHashedPassword(hash, salt)
	require.NoError(t, err)

	assert.True(t, a.SecureEqualTo(b))

	for i := range HashSize {
		flipped := bytes.Clone(hash)
		flipped[i] ^= 0x01
		other, err := NewHashedPassword(flipped, salt)
		require.NoError(t, err)
		assert.False(t, a.SecureEqualTo(other), "hash byte %d", i)
	}

	for i := range SaltSize {
		flipped := bytes.Clone(salt)
		flipped[i] ^= 0x80
		other, err := NewHashedPassword(hash, flipped)
		require.NoError(t, err)
		assert.False(t, a.SecureEqualTo(other), "salt byte %d", i)
	}

	assert.False(t, a.SecureEqualTo(HashedPassword{}))
}

func TestHashedPassword_AccessorsReturnCopies(t *testing.T) {
	hp, err := NewHashedPassword(sequentialBytes(HashSize, 0), sequentialBytes(SaltSize, 0))
	require.NoError(t, err)

	h := hp.Hash()
	h[0] = 0xFF
	s := hp.Salt()
	s[0] = 0xFF

	assert.Equal(t, byte(0), hp.Hash()[0])
	assert.Equal(t, byte(0), hp.Salt()[0])
	assert.False(t, hp.IsZero())
	assert.True(t, HashedPassword{}.IsZero())
}
