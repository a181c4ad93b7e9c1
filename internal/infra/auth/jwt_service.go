package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// refreshTokenBytes is the entropy of an opaque refresh token before encoding.
const refreshTokenBytes = 16

var errWrongAlgorithm = errors.New("unexpected signing algorithm")

// accessTokenClaims is the JSON payload of an access token.
type accessTokenClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"role"`
	jwt.RegisteredClaims
}

// jwtSigner is a concrete implementation of the TokenSigner interface using HS256 JWTs.
type jwtSigner struct {
	key        []byte
	clockSkew  time.Duration
	accessTTL  time.Duration
	refreshTTL time.Duration
	random     RandomSource
	now        func() time.Time
}

// NewJWTSigner is the constructor for jwtSigner.
// It takes configuration values to create a new token signer instance.
func NewJWTSigner(cfg *config.Config, random RandomSource) (service.TokenSigner, error) {
	return NewJWTSignerWithClock(cfg, random, time.Now)
}

// NewJWTSignerWithClock is NewJWTSigner with an explicit time source.
func NewJWTSignerWithClock(cfg *config.Config, random RandomSource, now func() time.Time) (service.TokenSigner, error) {
	if cfg.Security == nil {
		return nil, errors.New("security config must be provided")
	}
	if err := cfg.Security.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid security config")
	}

	return &jwtSigner{
		key:        []byte(cfg.Security.SigningKey),
		clockSkew:  cfg.Security.ClockSkew(),
		accessTTL:  cfg.Security.AccessTokenLifetime(),
		refreshTTL: cfg.Security.RefreshTokenLifetime(),
		random:     random,
		now:        now,
	}, nil
}

// IssueTokenPair signs an access token and mints an opaque refresh token.
func (s *jwtSigner) IssueTokenPair(username string, roles []string) (*entity.TokenPair, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "username must not be blank")
	}
	if entity.Roles(roles).HasBlank() {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "roles must not contain blank entries")
	}

	now := s.now().UTC()

	id, err := ulid.New(ulid.Timestamp(now), s.random)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalRandomness, err.Error())
	}

	claims := accessTokenClaims{
		Name:  username,
		Roles: append(make([]string, 0, len(roles)), roles...),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	raw, err := readRandom(s.random, refreshTokenBytes)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: base64.StdEncoding.EncodeToString(raw),
		Expires:      now.Add(s.refreshTTL),
	}, nil
}

// ValidateAndGetClaims verifies signature, algorithm and, unless ignoreExpiry, expiry.
func (s *jwtSigner) ValidateAndGetClaims(token string, ignoreExpiry bool) (*entity.AccessClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(s.now),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithExpirationRequired(),
	}
	if ignoreExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &accessTokenClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Exact match: HS384/HS512 share the HMAC method type and must still be rejected.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errWrongAlgorithm
		}

		return s.key, nil
	})
	if err != nil {
		return nil, service.NewTokenValidationError(classify(err), err)
	}

	if strings.TrimSpace(claims.Name) == "" {
		return nil, service.NewTokenValidationError(service.ValidationMalformed, errors.New("name claim is missing"))
	}
	if claims.ExpiresAt == nil {
		return nil, service.NewTokenValidationError(service.ValidationMalformed, errors.New("exp claim is missing"))
	}

	result := &entity.AccessClaims{
		ID:        claims.ID,
		Username:  claims.Name,
		Roles:     entity.Roles(claims.Roles),
		ExpiresAt: claims.ExpiresAt.UTC(),
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.UTC()
	}

	return result, nil
}

func classify(err error) service.ValidationKind {
	switch {
	case errors.Is(err, errWrongAlgorithm), errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.ValidationWrongAlgorithm
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ValidationMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return service.ValidationBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ValidationExpired
	default:
		return service.ValidationMalformed
	}
}
