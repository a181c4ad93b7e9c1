package auth

import (
	"bytes"
	"encoding/hex"
	"testing"
	"testing/iotest"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSalt() []byte {
	salt := make([]byte, entity.SaltSize)
	for i := range salt {
		salt[i] = byte(i + 1)
	}

	return salt
}

func TestPBKDF2Hasher_KnownVector(t *testing.T) {
	hasher := NewPBKDF2Hasher(NewRandomSource())

	hp, err := hasher.CreateWithSalt("hunter2", fixedSalt())
	require.NoError(t, err)

	assert.Equal(t, "29dd81a4c1e384e529160a11f7ba1f3b7211faa6", hex.EncodeToString(hp.Hash()))
	assert.Equal(t, "AQIDBAUGBwgJCgsMDQ4PECndgaTB44TlKRYKEfe6HztyEfqm", hp.AsBase64String())
}

func TestPBKDF2Hasher_CreateWithSaltIsDeterministic(t *testing.T) {
	hasher := NewPBKDF2Hasher(NewRandomSource())

	a, err := hasher.CreateWithSalt("correct horse", fixedSalt())
	require.NoError(t, err)
	b, err := hasher.CreateWithSalt("correct horse", fixedSalt())
	require.NoError(t, err)

	assert.True(t, a.SecureEqualTo(b))
}

func TestPBKDF2Hasher_CreateUsesFreshSalt(t *testing.T) {
	hasher := NewPBKDF2Hasher(NewRandomSource())

	a, err := hasher.Create("correct horse")
	require.NoError(t, err)
	b, err := hasher.Create("correct horse")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(a.Salt(), b.Salt()))
	assert.False(t, a.SecureEqualTo(b))
	assert.True(t, hasher.Verify("correct horse", a))
	assert.True(t, hasher.Verify("correct horse", b))
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := NewPBKDF2Hasher(NewRandomSource())

	hp, err := hasher.Create("hunter2")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("hunter2", hp))
	assert.False(t, hasher.Verify("hunter3", hp))
	assert.False(t, hasher.Verify("Hunter2", hp))
	assert.False(t, hasher.Verify("", hp))
	assert.False(t, hasher.Verify("   ", hp))
	assert.False(t, hasher.Verify("hunter2", entity.HashedPassword{}))
}

func TestPBKDF2Hasher_VerifyAfterRoundTrip(t *testing.T) {
	hasher := NewPBKDF2Hasher(NewRandomSource())

	hp, err := hasher.Create("pässwörd")
	require.NoError(t, err)

	parsed, err := entity.ParseHashedPassword(hp.AsBase64String())
	require.NoError(t, err)

	assert.True(t, hasher.Verify("pässwörd", parsed))
}

func TestPBKDF2Hasher_InvalidInput(t *testing.T) {
	hasher := NewPBKDF2Hasher(NewRandomSource())

	_, err := hasher.Create(" \t ")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = hasher.CreateWithSalt("", fixedSalt())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = hasher.CreateWithSalt("hunter2", make([]byte, entity.SaltSize-1))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestPBKDF2Hasher_RandomFailure(t *testing.T) {
	hasher := NewPBKDF2Hasher(iotest.ErrReader(errors.New("entropy exhausted")))

	_, err := hasher.Create("hunter2")
	assert.True(t, errors.Is(err, domainerrors.ErrInternalRandomness))
}
