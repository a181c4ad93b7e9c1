package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purgeCounter struct {
	usecase.AuthUsecase

	calls atomic.Int32
	err   error
}

func (p *purgeCounter) PurgeExpiredSessions(context.Context) (int, error) {
	p.calls.Add(1)

	return 1, p.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJanitor_PurgesUntilStopped(t *testing.T) {
	uc := &purgeCounter{}
	j := newJanitor(5*time.Millisecond, uc, newDiscardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return uc.calls.Load() >= 2 }, time.Second, time.Millisecond)

	require.NoError(t, j.stop(context.Background()))
	require.NoError(t, <-errCh)

	calls := uc.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, uc.calls.Load(), "no purges after stop")
}

func TestJanitor_KeepsRunningAfterErrors(t *testing.T) {
	uc := &purgeCounter{err: errors.New("store unavailable")}
	j := newJanitor(5*time.Millisecond, uc, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(ctx) }()

	require.Eventually(t, func() bool { return uc.calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)
}

func TestJanitor_Disabled(t *testing.T) {
	uc := &purgeCounter{}
	j := newJanitor(0, uc, newDiscardLogger())

	require.NoError(t, j.Serve(context.Background()))
	require.NoError(t, j.stop(context.Background()))
	assert.Zero(t, uc.calls.Load())
}
