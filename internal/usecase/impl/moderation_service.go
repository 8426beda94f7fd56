package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Moderation action outcomes, used as the result label of the moderation counter.
const (
	moderationDone    = "done"
	moderationRetry   = "retry"
	moderationFailed  = "failed"
	moderationSkipped = "skipped"
)

type moderationService struct {
	userRepo    repository.UserRepository
	shopRepo    repository.ShopRepository
	actionRepo  repository.ModerationActionRepository
	metrics     service.MetricsRecorder
	maxAttempts int
	batchSize   int
	logger      *slog.Logger
	now         func() time.Time
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	ShopRepo   repository.ShopRepository
	ActionRepo repository.ModerationActionRepository
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		userRepo:    params.UserRepo,
		shopRepo:    params.ShopRepo,
		actionRepo:  params.ActionRepo,
		metrics:     params.Metrics,
		maxAttempts: params.Config.Moderation.MaxAttempts,
		batchSize:   params.Config.Moderation.BatchSize,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// BanUser blocks the account
func (s *moderationService) BanUser(ctx context.Context, userID uuid.UUID) error {
	now := s.now()
	if err := s.setUserBanned(ctx, userID, &now); err != nil {
		return err
	}

	s.log(ctx).Info("User banned", slog.String("userID", userID.String()))

	return nil
}

// UnbanUser lifts the account ban
func (s *moderationService) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.setUserBanned(ctx, userID, nil); err != nil {
		return err
	}

	s.log(ctx).Info("User unbanned", slog.String("userID", userID.String()))

	return nil
}

// BanShop hides the shop from buyers
func (s *moderationService) BanShop(ctx context.Context, shopID uuid.UUID) error {
	now := s.now()
	if err := s.setShopBanned(ctx, shopID, &now); err != nil {
		return err
	}

	s.log(ctx).Info("Shop banned", slog.String("shopID", shopID.String()))

	return nil
}

// UnbanShop lifts the shop ban
func (s *moderationService) UnbanShop(ctx context.Context, shopID uuid.UUID) error {
	if err := s.setShopBanned(ctx, shopID, nil); err != nil {
		return err
	}

	s.log(ctx).Info("Shop unbanned", slog.String("shopID", shopID.String()))

	return nil
}

func (s *moderationService) setUserBanned(ctx context.Context, userID uuid.UUID, bannedAt *time.Time) error {
	if err := s.userRepo.SetBanned(ctx, userID, bannedAt); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user ban")
	}

	return nil
}

func (s *moderationService) setShopBanned(ctx context.Context, shopID uuid.UUID, bannedAt *time.Time) error {
	if err := s.shopRepo.SetShopBanned(ctx, shopID, bannedAt); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}

		return errors.Wrap(err, "failed to update shop ban")
	}

	return nil
}

// DispatchAction applies a queued action. Actions no longer pending are skipped,
// so a relay pass racing the post-commit dispatch does not apply twice.
func (s *moderationService) DispatchAction(ctx context.Context, actionID uuid.UUID) error {
	action, err := s.actionRepo.FindActionByID(ctx, actionID)
	if err != nil {
		if errors.Is(err, repository.ErrModerationActionNotFound) {
			return domainerrors.ErrModerationActionNotFound
		}

		return errors.Wrap(err, "failed to find moderation action")
	}

	return s.dispatch(ctx, action)
}

func (s *moderationService) dispatch(ctx context.Context, action *entity.ModerationAction) error {
	kind := string(action.Kind)
	if action.Status != entity.ModerationActionPending {
		s.metrics.ModerationAction(kind, moderationSkipped)

		return nil
	}

	applyErr := s.apply(ctx, action)
	if applyErr == nil {
		if err := s.actionRepo.MarkActionDone(ctx, action.ID, s.now()); err != nil {
			return errors.Wrap(err, "failed to mark moderation action done")
		}
		s.metrics.ModerationAction(kind, moderationDone)
		s.log(ctx).Info("Moderation action applied",
			slog.String("actionID", action.ID.String()),
			slog.String("kind", kind),
			slog.String("targetID", action.TargetID.String()),
		)

		return nil
	}

	// A missing target never appears on retry.
	terminal := action.Attempts+1 >= s.maxAttempts ||
		errors.Is(applyErr, domainerrors.ErrUserNotFound) ||
		errors.Is(applyErr, domainerrors.ErrShopNotFound)

	if err := s.actionRepo.RecordActionFailure(ctx, action.ID, applyErr.Error(), terminal); err != nil {
		s.log(ctx).Error("Failed to record moderation action failure",
			slog.String("actionID", action.ID.String()),
			slog.Any("error", err),
		)
	}

	result := moderationRetry
	if terminal {
		result = moderationFailed
	}
	s.metrics.ModerationAction(kind, result)

	return errors.Wrapf(applyErr, "moderation action %s", action.ID)
}

func (s *moderationService) apply(ctx context.Context, action *entity.ModerationAction) error {
	switch action.Kind {
	case entity.ModerationUnbanUser:
		return s.setUserBanned(ctx, action.TargetID, nil)
	case entity.ModerationUnbanShop:
		return s.setShopBanned(ctx, action.TargetID, nil)
	default:
		return errors.Errorf("unknown moderation action kind %q", action.Kind)
	}
}

// ProcessPendingActions retries one batch of queued actions
func (s *moderationService) ProcessPendingActions(ctx context.Context) (int, error) {
	actions, err := s.actionRepo.ListPendingActions(ctx, s.maxAttempts, s.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list pending moderation actions")
	}

	applied := 0
	for _, action := range actions {
		if ctx.Err() != nil {
			return applied, ctx.Err()
		}

		if err := s.dispatch(ctx, action); err != nil {
			s.log(ctx).Warn("Moderation action retry failed",
				slog.String("actionID", action.ID.String()),
				slog.Int("attempts", action.Attempts+1),
				slog.Any("error", err),
			)

			continue
		}
		applied++
	}

	if len(actions) > 0 {
		s.log(ctx).Info("Moderation relay pass finished",
			slog.Int("pending", len(actions)),
			slog.Int("applied", applied),
		)
	}

	return applied, nil
}
