package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelayServer_RunOnce(t *testing.T) {
	t.Run("passes a run-scoped logger and request ID", func(t *testing.T) {
		moderationUC := mockUsecase.NewMockModerationUsecase(t)
		moderationUC.EXPECT().ProcessPendingActions(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) != "" && deliverycontext.GetLogger(ctx) != nil
		})).Return(2, nil).Once()

		srv := newRelayServer(time.Minute, newTestLogger(), moderationUC)
		srv.runOnce(context.Background())
	})

	t.Run("swallows pass errors", func(t *testing.T) {
		moderationUC := mockUsecase.NewMockModerationUsecase(t)
		moderationUC.EXPECT().ProcessPendingActions(mock.Anything).Return(0, errors.New("db down")).Once()

		srv := newRelayServer(time.Minute, newTestLogger(), moderationUC)
		assert.NotPanics(t, func() { srv.runOnce(context.Background()) })
	})
}

func TestRelayServer_ServeAndStop(t *testing.T) {
	moderationUC := mockUsecase.NewMockModerationUsecase(t)
	called := make(chan struct{}, 1)
	moderationUC.EXPECT().ProcessPendingActions(mock.Anything).
		Run(func(ctx context.Context) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return(0, nil).Maybe()

	srv := newRelayServer(5*time.Millisecond, newTestLogger(), moderationUC)

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(context.Background()) }()

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("relay never ran a pass")
	}

	require.NoError(t, srv.stop(context.Background()))
	assert.NoError(t, <-serveErr)

	// A second stop is harmless.
	assert.NoError(t, srv.stop(context.Background()))
}

func TestRelayServer_StopBeforeServe(t *testing.T) {
	srv := newRelayServer(time.Minute, newTestLogger(), mockUsecase.NewMockModerationUsecase(t))

	assert.NoError(t, srv.stop(context.Background()))
}

func TestRelayServer_ServeStopsOnContextCancel(t *testing.T) {
	srv := newRelayServer(time.Hour, newTestLogger(), mockUsecase.NewMockModerationUsecase(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, srv.Serve(ctx))
}
