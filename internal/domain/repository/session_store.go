package repository

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
)

// ErrSessionNotFound is returned for an unknown user, a wrong token or an
// expired record alike, so callers cannot tell which.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore tracks one live refresh token per username.
// Every method is individually atomic and safe for concurrent use.
type SessionStore interface {
	// Put overwrites any existing record for username. Last writer wins.
	Put(ctx context.Context, username string, record entity.RefreshTokenRecord) error

	// ValidateAndGet returns the record only if it exists, its token equals
	// presentedToken and it has not expired. Otherwise ErrSessionNotFound.
	ValidateAndGet(ctx context.Context, username, presentedToken string) (entity.RefreshTokenRecord, error)

	// Revoke removes the record only if its token equals presentedToken.
	// It reports whether a record was removed.
	Revoke(ctx context.Context, username, presentedToken string) (bool, error)

	// PurgeExpired drops every expired record and returns how many were removed.
	PurgeExpired(ctx context.Context) (int, error)

	// Count returns the number of stored records, expired ones included.
	Count(ctx context.Context) (int, error)
}
