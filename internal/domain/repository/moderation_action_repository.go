package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrModerationActionNotFound is returned when a moderation action is not found.
var ErrModerationActionNotFound = errors.New("moderation action not found")

// ModerationActionRepository persists the moderation outbox.
type ModerationActionRepository interface {
	CreateAction(ctx context.Context, action *entity.ModerationAction) error
	FindActionByID(ctx context.Context, id uuid.UUID) (*entity.ModerationAction, error)

	// ListPendingActions returns pending actions attempted fewer than maxAttempts
	// times, oldest first.
	ListPendingActions(ctx context.Context, maxAttempts, limit int) ([]*entity.ModerationAction, error)

	MarkActionDone(ctx context.Context, id uuid.UUID, at time.Time) error

	// RecordActionFailure increments the attempt count and stores the error.
	// When terminal is true the action leaves the pending queue.
	RecordActionFailure(ctx context.Context, id uuid.UUID, errMsg string, terminal bool) error
}
