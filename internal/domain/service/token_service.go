package service

import (
	"fmt"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
)

// ValidationKind is the closed set of reasons an access token can be rejected.
type ValidationKind int

const (
	// ValidationMalformed means the token could not be parsed or lacks required claims.
	ValidationMalformed ValidationKind = iota + 1
	// ValidationBadSignature means the signature did not verify with the service key.
	ValidationBadSignature
	// ValidationExpired means the token is past expiry plus clock skew.
	ValidationExpired
	// ValidationWrongAlgorithm means the header names anything other than HS256.
	ValidationWrongAlgorithm
)

// String returns a stable, log-friendly name.
func (k ValidationKind) String() string {
	switch k {
	case ValidationMalformed:
		return "malformed"
	case ValidationBadSignature:
		return "bad_signature"
	case ValidationExpired:
		return "expired"
	case ValidationWrongAlgorithm:
		return "wrong_algorithm"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// TokenValidationError reports why ValidateAndGetClaims rejected a token.
// It unwraps to domainerrors.ErrUnauthorized.
type TokenValidationError struct {
	Kind  ValidationKind
	cause error
}

// NewTokenValidationError builds a validation error of the given kind.
func NewTokenValidationError(kind ValidationKind, cause error) *TokenValidationError {
	return &TokenValidationError{Kind: kind, cause: cause}
}

func (e *TokenValidationError) Error() string {
	if e.cause == nil {
		return "access token rejected: " + e.Kind.String()
	}

	return "access token rejected: " + e.Kind.String() + ": " + e.cause.Error()
}

// Unwrap exposes the unauthorized sentinel and the library cause.
func (e *TokenValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{domainerrors.ErrUnauthorized}
	}

	return []error{domainerrors.ErrUnauthorized, e.cause}
}

// TokenSigner defines the interface for issuing and validating signed access tokens.
// This abstracts the details of token creation from the use cases.
type TokenSigner interface {
	// IssueTokenPair signs an access token for username/roles and mints a random refresh token.
	IssueTokenPair(username string, roles []string) (*entity.TokenPair, error)

	// ValidateAndGetClaims verifies a token. With ignoreExpiry set, an expired but
	// correctly signed token is still accepted. Failures are *TokenValidationError.
	ValidateAndGetClaims(token string, ignoreExpiry bool) (*entity.AccessClaims, error)
}
