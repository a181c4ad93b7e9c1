// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"
)

// AuthenticateInput carries the credentials of a sign-in attempt.
type AuthenticateInput struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// TokenInput identifies a session by its access token and the refresh token bound to it.
type TokenInput struct {
	AccessToken  string `json:"accessToken" validate:"notblank"`
	RefreshToken string `json:"refreshToken" validate:"notblank"`
}

// TokenOutput is a freshly issued credential pair.
type TokenOutput struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Expires      time.Time `json:"expires"` // Refresh token expiry, UTC.
}

// AuthUsecase defines the session lifecycle: authenticate, rotate, revoke.
type AuthUsecase interface {
	// Authenticate verifies credentials and opens a session.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*TokenOutput, error)

	// Refresh rotates the refresh token of a live session and issues a new pair.
	// The access token may be expired but must carry a valid signature.
	Refresh(ctx context.Context, input *TokenInput) (*TokenOutput, error)

	// Revoke ends the session the refresh token belongs to.
	Revoke(ctx context.Context, input *TokenInput) error

	// HashPassword returns the storable base64 form of a freshly salted hash.
	HashPassword(ctx context.Context, password string) (string, error)

	// PurgeExpiredSessions drops expired sessions and returns how many were removed.
	PurgeExpiredSessions(ctx context.Context) (int, error)
}
