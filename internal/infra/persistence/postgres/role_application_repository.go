package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleApplicationRepository implements the domain.RoleApplicationRepository interface.
type roleApplicationRepository struct {
	db *gorm.DB
}

// NewRoleApplicationRepository is the constructor for roleApplicationRepository.
func NewRoleApplicationRepository(db *gorm.DB) repository.RoleApplicationRepository {
	return &roleApplicationRepository{db: db}
}

// CreateApplication persists a new role application.
func (repo *roleApplicationRepository) CreateApplication(ctx context.Context, app *entity.RoleApplication) error {
	appM := fromApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create role application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// FindApplicationByID retrieves a role application by its ID.
func (repo *roleApplicationRepository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*entity.RoleApplication, error) {
	var appM model.RoleApplicationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find role application by ID")
	}

	return toApplicationDomain(&appM), nil
}

// FindPendingApplicationByUser retrieves the pending application of a user.
func (repo *roleApplicationRepository) FindPendingApplicationByUser(ctx context.Context, userID uuid.UUID) (*entity.RoleApplication, error) {
	var appM model.RoleApplicationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.ApplicationStatusPending)).
		First(&appM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending role application")
	}

	return toApplicationDomain(&appM), nil
}

// ListApplicationsByUser lists a user's applications, newest first.
func (repo *roleApplicationRepository) ListApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RoleApplication, error) {
	return repo.list(ctx, "user_id = ?", userID, "created_at DESC")
}

// ListApplicationsByStatus lists applications in a status, oldest first.
func (repo *roleApplicationRepository) ListApplicationsByStatus(ctx context.Context, status entity.ApplicationStatus) ([]*entity.RoleApplication, error) {
	return repo.list(ctx, "status = ?", string(status), "created_at ASC")
}

// UpdateApplication saves the review fields of an application.
func (repo *roleApplicationRepository) UpdateApplication(ctx context.Context, app *entity.RoleApplication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoleApplicationModel{}).
		Where("id = ?", app.ID).
		Updates(map[string]any{
			"status":           string(app.Status),
			"reviewer_id":      app.ReviewerID,
			"rejection_reason": app.RejectionReason,
			"reviewed_at":      app.ReviewedAt,
			"updated_at":       app.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update role application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

func (repo *roleApplicationRepository) list(ctx context.Context, query string, arg any, order string) ([]*entity.RoleApplication, error) {
	var appModels []*model.RoleApplicationModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Order(order).Find(&appModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list role applications")
	}

	apps := make([]*entity.RoleApplication, 0, len(appModels))
	for _, appM := range appModels {
		apps = append(apps, toApplicationDomain(appM))
	}

	return apps, nil
}

func toApplicationDomain(data *model.RoleApplicationModel) *entity.RoleApplication {
	return &entity.RoleApplication{
		ID:              data.ID,
		UserID:          data.UserID,
		RequestedRole:   entity.Role(data.RequestedRole),
		Reason:          data.Reason,
		ShopName:        data.ShopName,
		ShopDescription: data.ShopDescription,
		ShopAddress:     data.ShopAddress,
		ShopPhone:       data.ShopPhone,
		Status:          entity.ApplicationStatus(data.Status),
		ReviewerID:      data.ReviewerID,
		RejectionReason: data.RejectionReason,
		ReviewedAt:      data.ReviewedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.RoleApplication) *model.RoleApplicationModel {
	return &model.RoleApplicationModel{
		ID:              data.ID,
		UserID:          data.UserID,
		RequestedRole:   data.RequestedRole.String(),
		Reason:          data.Reason,
		ShopName:        data.ShopName,
		ShopDescription: data.ShopDescription,
		ShopAddress:     data.ShopAddress,
		ShopPhone:       data.ShopPhone,
		Status:          string(data.Status),
		ReviewerID:      data.ReviewerID,
		RejectionReason: data.RejectionReason,
		ReviewedAt:      data.ReviewedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
