package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ModerationUsecase defines admin moderation and the delivery of queued moderation actions.
type ModerationUsecase interface {
	BanUser(ctx context.Context, userID uuid.UUID) error
	UnbanUser(ctx context.Context, userID uuid.UUID) error
	BanShop(ctx context.Context, shopID uuid.UUID) error
	UnbanShop(ctx context.Context, shopID uuid.UUID) error

	// DispatchAction applies one queued moderation action and records the outcome.
	DispatchAction(ctx context.Context, actionID uuid.UUID) error

	// ProcessPendingActions retries queued actions and returns how many succeeded.
	ProcessPendingActions(ctx context.Context) (int, error)
}
