// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// RefreshTokenRecord is the single live session of a user.
// It is used to obtain a new access token without re-entering a password.
type RefreshTokenRecord struct {
	Token   string    // Opaque random capability, base64 encoded.
	Expires time.Time // Always UTC.
}

// NewRefreshTokenRecord builds a record, normalizing the expiry to UTC.
func NewRefreshTokenRecord(token string, expires time.Time) RefreshTokenRecord {
	return RefreshTokenRecord{
		Token:   token,
		Expires: expires.UTC(),
	}
}

// IsActiveAt reports whether the record is still usable at now.
// Expiry is strict: a record expiring exactly at now is dead.
func (r RefreshTokenRecord) IsActiveAt(now time.Time) bool {
	return r.Expires.After(now.UTC())
}

// TokenPair is what a successful authenticate or refresh hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Expires      time.Time // Refresh token expiry, UTC.
}

// AccessClaims is the verified content of an access token.
type AccessClaims struct {
	ID        string // Token identifier (jti).
	Username  string
	Roles     Roles
	IssuedAt  time.Time
	ExpiresAt time.Time
}
