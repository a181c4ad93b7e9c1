// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"
)

const (
	opAuthenticate = "authenticate"
	opRefresh      = "refresh"
	opRevoke       = "revoke"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	hasher   service.PasswordHasher
	signer   service.TokenSigner
	metrics  service.AuthMetrics
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionStore,
	hasher service.PasswordHasher,
	signer service.TokenSigner,
	metrics service.AuthMetrics,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		signer:   signer,
		metrics:  metrics,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies username/password and stores the new refresh token.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.TokenOutput, error) {
	if input == nil || isBlank(input.Username) || isBlank(input.Password) {
		srv.metrics.ObserveAttempt(opAuthenticate, service.OutcomeInvalidInput)

		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "username or password is empty or missing")
	}

	user, err := srv.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.ObserveAttempt(opAuthenticate, service.OutcomeError)

			return nil, errors.Wrap(err, "failed to find user")
		}

		// Unknown users still pay for one KDF run.
		srv.hasher.Verify(input.Password, entity.HashedPassword{})
		srv.metrics.ObserveAttempt(opAuthenticate, service.OutcomeInvalidCredentials)
		srv.log(ctx).Info("Authentication failed", slog.String("username", input.Username), slog.String("reason", "unknown_user"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown user")
	}

	if !srv.hasher.Verify(input.Password, user.Password) {
		srv.metrics.ObserveAttempt(opAuthenticate, service.OutcomeInvalidCredentials)
		srv.log(ctx).Info("Authentication failed", slog.String("username", user.Username), slog.String("reason", "password_mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	output, err := srv.openSession(ctx, user.Username, user.Roles.ToStrings())
	if err != nil {
		srv.metrics.ObserveAttempt(opAuthenticate, service.OutcomeError)

		return nil, err
	}

	srv.metrics.ObserveAttempt(opAuthenticate, service.OutcomeSuccess)
	srv.log(ctx).Info("Authentication succeeded", slog.String("username", user.Username), slog.Time("expires", output.Expires))

	return output, nil
}

// Refresh validates the pair, rotates the refresh token and issues new credentials
// carrying the roles of the presented access token.
func (srv *authService) Refresh(ctx context.Context, input *usecase.TokenInput) (*usecase.TokenOutput, error) {
	claims, err := srv.identify(ctx, opRefresh, input)
	if err != nil {
		return nil, err
	}

	if _, err := srv.sessions.ValidateAndGet(ctx, claims.Username, input.RefreshToken); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.metrics.ObserveAttempt(opRefresh, service.OutcomeForbidden)
			srv.log(ctx).Info("Refresh rejected", slog.String("username", claims.Username), slog.String("reason", "no_matching_session"))

			return nil, errors.Wrap(domainerrors.ErrForbidden, "refresh token does not match an active session")
		}
		srv.metrics.ObserveAttempt(opRefresh, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to look up session")
	}

	pair, err := srv.signer.IssueTokenPair(claims.Username, claims.Roles.ToStrings())
	if err != nil {
		srv.metrics.ObserveAttempt(opRefresh, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	// A concurrent refresh may already have rotated the record; last writer wins.
	revoked, err := srv.sessions.Revoke(ctx, claims.Username, input.RefreshToken)
	if err != nil {
		srv.metrics.ObserveAttempt(opRefresh, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to revoke previous refresh token")
	}
	if !revoked {
		srv.log(ctx).Warn("Previous refresh token was already rotated", slog.String("username", claims.Username))
	}

	if err := srv.store(ctx, claims.Username, pair); err != nil {
		srv.metrics.ObserveAttempt(opRefresh, service.OutcomeError)

		return nil, err
	}

	srv.metrics.ObserveAttempt(opRefresh, service.OutcomeSuccess)
	srv.log(ctx).Info("Refresh succeeded", slog.String("username", claims.Username), slog.Time("expires", pair.Expires))

	return toTokenOutput(pair), nil
}

// Revoke removes the session whose refresh token matches.
func (srv *authService) Revoke(ctx context.Context, input *usecase.TokenInput) error {
	claims, err := srv.identify(ctx, opRevoke, input)
	if err != nil {
		return err
	}

	revoked, err := srv.sessions.Revoke(ctx, claims.Username, input.RefreshToken)
	if err != nil {
		srv.metrics.ObserveAttempt(opRevoke, service.OutcomeError)

		return errors.Wrap(err, "failed to revoke session")
	}
	if !revoked {
		srv.metrics.ObserveAttempt(opRevoke, service.OutcomeForbidden)
		srv.log(ctx).Info("Revoke rejected", slog.String("username", claims.Username), slog.String("reason", "no_matching_session"))

		return errors.Wrap(domainerrors.ErrForbidden, "refresh token does not match the current session")
	}

	srv.recordActiveSessions(ctx)
	srv.metrics.ObserveAttempt(opRevoke, service.OutcomeSuccess)
	srv.log(ctx).Info("Session revoked", slog.String("username", claims.Username))

	return nil
}

// HashPassword derives a storable hash with a fresh salt.
func (srv *authService) HashPassword(_ context.Context, password string) (string, error) {
	hashed, err := srv.hasher.Create(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hashed.AsBase64String(), nil
}

// PurgeExpiredSessions drops expired session records.
func (srv *authService) PurgeExpiredSessions(ctx context.Context) (int, error) {
	removed, err := srv.sessions.PurgeExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	srv.recordActiveSessions(ctx)
	if removed > 0 {
		srv.log(ctx).Debug("Purged expired sessions", slog.Int("removed", removed))
	}

	return removed, nil
}

// identify checks the request shape and returns the claims of the access token, expiry ignored.
func (srv *authService) identify(ctx context.Context, op string, input *usecase.TokenInput) (*entity.AccessClaims, error) {
	if input == nil || isBlank(input.AccessToken) || isBlank(input.RefreshToken) {
		srv.metrics.ObserveAttempt(op, service.OutcomeInvalidInput)

		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "access or refresh token is empty or missing")
	}

	claims, err := srv.signer.ValidateAndGetClaims(input.AccessToken, true)
	if err != nil {
		reason := "invalid"
		var tve *service.TokenValidationError
		if errors.As(err, &tve) {
			reason = tve.Kind.String()
		}
		srv.metrics.ObserveAttempt(op, service.OutcomeUnauthorized)
		srv.log(ctx).Info("Access token rejected", slog.String("operation", op), slog.String("reason", reason))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "access token rejected: "+reason)
	}

	return claims, nil
}

func (srv *authService) openSession(ctx context.Context, username string, roles []string) (*usecase.TokenOutput, error) {
	pair, err := srv.signer.IssueTokenPair(username, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	if err := srv.store(ctx, username, pair); err != nil {
		return nil, err
	}

	return toTokenOutput(pair), nil
}

func (srv *authService) store(ctx context.Context, username string, pair *entity.TokenPair) error {
	if err := srv.sessions.Put(ctx, username, entity.NewRefreshTokenRecord(pair.RefreshToken, pair.Expires)); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	srv.recordActiveSessions(ctx)

	return nil
}

func (srv *authService) recordActiveSessions(ctx context.Context) {
	count, err := srv.sessions.Count(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to count sessions", slog.Any("error", err))

		return
	}

	srv.metrics.SetActiveSessions(count)
}

func toTokenOutput(pair *entity.TokenPair) *usecase.TokenOutput {
	return &usecase.TokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Expires:      pair.Expires.UTC(),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
