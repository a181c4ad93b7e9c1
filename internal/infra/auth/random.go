package auth

import (
	"crypto/rand"
	"io"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
)

// RandomSource is the only way this package obtains random bytes.
// Implementations must be cryptographically secure.
type RandomSource interface {
	io.Reader
}

// NewRandomSource returns the operating system CSPRNG.
func NewRandomSource() RandomSource {
	return rand.Reader
}

// readRandom fills a new n-byte slice. Any short read or error is fatal for
// the calling operation and surfaces as ErrInternalRandomness.
func readRandom(src RandomSource, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalRandomness, err.Error())
	}

	return buf, nil
}
