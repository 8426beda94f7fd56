package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// moderationActionRepository implements the domain.ModerationActionRepository interface.
type moderationActionRepository struct {
	db *gorm.DB
}

// NewModerationActionRepository is the constructor for moderationActionRepository.
func NewModerationActionRepository(db *gorm.DB) repository.ModerationActionRepository {
	return &moderationActionRepository{db: db}
}

// CreateAction persists a pending moderation action.
func (repo *moderationActionRepository) CreateAction(ctx context.Context, action *entity.ModerationAction) error {
	actionM := &model.ModerationActionModel{
		ID:          action.ID,
		Kind:        string(action.Kind),
		TargetID:    action.TargetID,
		ComplaintID: action.ComplaintID,
		Status:      string(action.Status),
		Attempts:    action.Attempts,
		CreatedAt:   action.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create moderation action")
	}

	action.ID = actionM.ID
	action.CreatedAt = actionM.CreatedAt

	return nil
}

// FindActionByID retrieves a moderation action by its ID.
func (repo *moderationActionRepository) FindActionByID(ctx context.Context, id uuid.UUID) (*entity.ModerationAction, error) {
	var actionM model.ModerationActionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&actionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModerationActionNotFound
		}

		return nil, errors.Wrap(err, "failed to find moderation action")
	}

	return toModerationActionDomain(&actionM), nil
}

// ListPendingActions lists retryable pending actions, oldest first.
func (repo *moderationActionRepository) ListPendingActions(ctx context.Context, maxAttempts, limit int) ([]*entity.ModerationAction, error) {
	var actionModels []*model.ModerationActionModel
	err := repo.db.WithContext(ctx).
		Where("status = ? AND attempts < ?", string(entity.ModerationActionPending), maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&actionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending moderation actions")
	}

	actions := make([]*entity.ModerationAction, 0, len(actionModels))
	for _, actionM := range actionModels {
		actions = append(actions, toModerationActionDomain(actionM))
	}

	return actions, nil
}

// MarkActionDone records a successful delivery.
func (repo *moderationActionRepository) MarkActionDone(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ModerationActionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(entity.ModerationActionDone),
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   "",
			"processed_at": at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark moderation action done")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModerationActionNotFound
	}

	return nil
}

// RecordActionFailure records a failed delivery attempt.
func (repo *moderationActionRepository) RecordActionFailure(ctx context.Context, id uuid.UUID, errMsg string, terminal bool) error {
	updates := map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": errMsg,
	}
	if terminal {
		updates["status"] = string(entity.ModerationActionFailed)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ModerationActionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record moderation action failure")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModerationActionNotFound
	}

	return nil
}

func toModerationActionDomain(data *model.ModerationActionModel) *entity.ModerationAction {
	return &entity.ModerationAction{
		ID:          data.ID,
		Kind:        entity.ModerationActionKind(data.Kind),
		TargetID:    data.TargetID,
		ComplaintID: data.ComplaintID,
		Status:      entity.ModerationActionStatus(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		ProcessedAt: data.ProcessedAt,
	}
}
