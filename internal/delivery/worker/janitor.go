// Package worker contains background deliveries that run beside the API server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"go.uber.org/fx"
)

// janitor periodically drops expired sessions.
type janitor struct {
	interval time.Duration
	uc       usecase.AuthUsecase
	logger   *slog.Logger

	started  atomic.Bool
	stopOnce sync.Once
	done     chan struct{}
	stopped  chan struct{}
}

// JanitorParams holds dependencies for the session janitor
type JanitorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Auth   usecase.AuthUsecase
}

// NewJanitor creates the session janitor. It idles when security.purgeIntervalMinutes is not positive.
func NewJanitor(params JanitorParams) (delivery.Delivery, error) {
	j := newJanitor(params.Cfg.Security.PurgeInterval(), params.Auth, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j, nil
}

func newJanitor(interval time.Duration, uc usecase.AuthUsecase, logger *slog.Logger) *janitor {
	return &janitor{
		interval: interval,
		uc:       uc,
		logger:   logger,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Serve runs purge passes until stopped or ctx is done.
func (j *janitor) Serve(ctx context.Context) error {
	j.started.Store(true)
	defer close(j.stopped)

	if j.interval <= 0 {
		j.logger.Info("Session janitor disabled")

		return nil
	}

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.done:
			return nil
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *janitor) purge(ctx context.Context) {
	removed, err := j.uc.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Session purge failed", slog.Any("error", err))

		return
	}
	if removed > 0 {
		j.logger.Info("Purged expired sessions", slog.Int("removed", removed))
	}
}

func (j *janitor) stop(ctx context.Context) error {
	j.stopOnce.Do(func() { close(j.done) })
	if !j.started.Load() {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	j.logger.Info("Shutting down session janitor")

	select {
	case <-j.stopped:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "session janitor did not stop")
	}
}
