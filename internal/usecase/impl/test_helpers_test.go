package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	users    *mockRepo.MockUserRepository
	sessions *mockRepo.MockSessionStore
	hasher   *mockSvc.MockPasswordHasher
	signer   *mockSvc.MockTokenSigner
	metrics  *mockSvc.MockAuthMetrics
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	sessions := mockRepo.NewMockSessionStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	signer := mockSvc.NewMockTokenSigner(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	// Gauge updates are incidental to most cases.
	metrics.EXPECT().SetActiveSessions(mock.Anything).Maybe()

	return authServiceFixtures{
		service:  NewAuthService(users, sessions, hasher, signer, metrics, newDiscardLogger()),
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		signer:   signer,
		metrics:  metrics,
	}
}
