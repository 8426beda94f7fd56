package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type roleApplicationService struct {
	txManager repository.TransactionManager
	appRepo   repository.RoleApplicationRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
	now       func() time.Time
}

// RoleApplicationServiceParams holds dependencies for RoleApplicationService, injected by Fx.
type RoleApplicationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AppRepo   repository.RoleApplicationRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewRoleApplicationService creates a new role application service instance
func NewRoleApplicationService(params RoleApplicationServiceParams) usecase.RoleApplicationUsecase {
	return &roleApplicationService{
		txManager: params.TxManager,
		appRepo:   params.AppRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *roleApplicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubmitApplication files a pending request for a new role
func (s *roleApplicationService) SubmitApplication(ctx context.Context, userID uuid.UUID, input usecase.SubmitApplicationInput) (*entity.RoleApplication, error) {
	if !input.RequestedRole.IsApplicable() {
		return nil, domainerrors.ErrRoleNotApplicable
	}
	if input.RequestedRole == entity.RoleSeller && strings.TrimSpace(input.ShopName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop name is required for sellers")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role == input.RequestedRole {
		return nil, domainerrors.ErrRoleNotApplicable.WithDetails("user already has role " + user.Role.String())
	}

	_, err = s.appRepo.FindPendingApplicationByUser(ctx, userID)
	if err == nil {
		return nil, domainerrors.ErrApplicationExists
	}
	if !errors.Is(err, repository.ErrApplicationNotFound) {
		return nil, errors.Wrap(err, "failed to check pending applications")
	}

	now := s.now()
	app := &entity.RoleApplication{
		ID:              uuid.New(),
		UserID:          userID,
		RequestedRole:   input.RequestedRole,
		Reason:          input.Reason,
		ShopName:        strings.TrimSpace(input.ShopName),
		ShopDescription: input.ShopDescription,
		ShopAddress:     input.ShopAddress,
		ShopPhone:       input.ShopPhone,
		Status:          entity.ApplicationStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.appRepo.CreateApplication(ctx, app); err != nil {
		return nil, errors.Wrap(err, "failed to create role application")
	}

	s.log(ctx).Info("Role application submitted",
		slog.String("userID", userID.String()),
		slog.String("role", app.RequestedRole.String()),
	)

	return app, nil
}

// ListMyApplications lists the user's applications
func (s *roleApplicationService) ListMyApplications(ctx context.Context, userID uuid.UUID) ([]*entity.RoleApplication, error) {
	apps, err := s.appRepo.ListApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role applications")
	}

	return apps, nil
}

// ListPendingApplications lists the applications awaiting review
func (s *roleApplicationService) ListPendingApplications(ctx context.Context) ([]*entity.RoleApplication, error) {
	apps, err := s.appRepo.ListApplicationsByStatus(ctx, entity.ApplicationStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role applications")
	}

	return apps, nil
}

// ApproveApplication grants the role. Sellers get their shop in the same transaction.
func (s *roleApplicationService) ApproveApplication(ctx context.Context, reviewerID, applicationID uuid.UUID) (*entity.RoleApplication, error) {
	var app *entity.RoleApplication
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		appRepo := txRepoFactory.NewRoleApplicationRepository()

		var err error
		app, err = findPendingApplication(ctx, appRepo, applicationID)
		if err != nil {
			return err
		}

		if err := txRepoFactory.NewUserRepository().UpdateRole(ctx, app.UserID, app.RequestedRole); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to update user role")
		}

		now := s.now()
		if app.RequestedRole == entity.RoleSeller {
			if err := createShopFor(ctx, txRepoFactory.NewShopRepository(), app, now); err != nil {
				return err
			}
		}

		markReviewed(app, entity.ApplicationStatusApproved, reviewerID, now)

		return errors.Wrap(appRepo.UpdateApplication(ctx, app), "failed to update role application")
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Role application approved",
		slog.String("applicationID", app.ID.String()),
		slog.String("userID", app.UserID.String()),
		slog.String("role", app.RequestedRole.String()),
	)

	return app, nil
}

func createShopFor(ctx context.Context, shopRepo repository.ShopRepository, app *entity.RoleApplication, now time.Time) error {
	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     app.UserID,
		Name:        app.ShopName,
		Description: app.ShopDescription,
		Address:     app.ShopAddress,
		Phone:       app.ShopPhone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := shopRepo.CreateShop(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrShopOwnerConflict) {
			return domainerrors.ErrShopAlreadyExists
		}

		return errors.Wrap(err, "failed to create shop")
	}

	return nil
}

// RejectApplication closes the application without changing the user's role
func (s *roleApplicationService) RejectApplication(ctx context.Context, reviewerID, applicationID uuid.UUID, reason string) (*entity.RoleApplication, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejection reason is required")
	}

	app, err := findPendingApplication(ctx, s.appRepo, applicationID)
	if err != nil {
		return nil, err
	}

	markReviewed(app, entity.ApplicationStatusRejected, reviewerID, s.now())
	app.RejectionReason = reason

	if err := s.appRepo.UpdateApplication(ctx, app); err != nil {
		return nil, errors.Wrap(err, "failed to update role application")
	}

	s.log(ctx).Info("Role application rejected",
		slog.String("applicationID", app.ID.String()),
		slog.String("userID", app.UserID.String()),
	)

	return app, nil
}

func findPendingApplication(ctx context.Context, appRepo repository.RoleApplicationRepository, id uuid.UUID) (*entity.RoleApplication, error) {
	app, err := appRepo.FindApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, domainerrors.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find role application")
	}
	if !app.IsPending() {
		return nil, domainerrors.ErrApplicationNotPending
	}

	return app, nil
}

func markReviewed(app *entity.RoleApplication, status entity.ApplicationStatus, reviewerID uuid.UUID, now time.Time) {
	app.Status = status
	app.ReviewerID = &reviewerID
	app.ReviewedAt = &now
	app.UpdatedAt = now
}
