// Package worker runs background deliveries that are not driven by HTTP requests.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// relayServer retries queued moderation actions on a fixed interval. Actions
// are normally applied right after their complaint decision commits; the relay
// picks up the ones whose dispatch failed or never ran.
type relayServer struct {
	interval     time.Duration
	logger       *slog.Logger
	moderationUC usecase.ModerationUsecase

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ServerParams holds dependencies for the moderation relay
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ModerationUC usecase.ModerationUsecase
}

// NewServer creates the moderation relay delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Moderation == nil || params.Cfg.Moderation.RelayInterval <= 0 {
		return nil, errors.New("moderation relay interval must be positive")
	}

	srv := newRelayServer(params.Cfg.Moderation.RelayInterval, params.Logger, params.ModerationUC)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newRelayServer(interval time.Duration, logger *slog.Logger, moderationUC usecase.ModerationUsecase) *relayServer {
	return &relayServer{
		interval:     interval,
		logger:       logger,
		moderationUC: moderationUC,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Serve runs relay passes until the delivery is stopped or ctx is cancelled.
func (s *relayServer) Serve(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.doneCh)

	s.logger.Info("Starting moderation relay", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce performs one relay pass with its own run ID and logger.
func (s *relayServer) runOnce(ctx context.Context) {
	runID := uuid.New().String()
	logger := s.logger.With(slog.String("relay_run_id", runID))
	passCtx := deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), logger)

	applied, err := s.moderationUC.ProcessPendingActions(passCtx)
	if err != nil {
		logger.Error("Moderation relay pass failed", slog.Any("error", err))

		return
	}

	if applied > 0 {
		logger.Info("Moderation relay applied actions", slog.Int("applied", applied))
	}
}

// stop ends the relay loop and waits for the current pass to finish.
func (s *relayServer) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	if !s.started.Load() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down moderation relay")

	select {
	case <-s.doneCh:
		return nil
	case <-waitCtx.Done():
		return errors.WithStack(waitCtx.Err())
	}
}
