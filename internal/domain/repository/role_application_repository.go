package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrApplicationNotFound is returned when a role application is not found.
var ErrApplicationNotFound = errors.New("role application not found")

// RoleApplicationRepository defines role application persistence operations.
type RoleApplicationRepository interface {
	CreateApplication(ctx context.Context, app *entity.RoleApplication) error
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*entity.RoleApplication, error)

	// FindPendingApplicationByUser returns ErrApplicationNotFound when the user has none pending.
	FindPendingApplicationByUser(ctx context.Context, userID uuid.UUID) (*entity.RoleApplication, error)

	ListApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RoleApplication, error)
	ListApplicationsByStatus(ctx context.Context, status entity.ApplicationStatus) ([]*entity.RoleApplication, error)
	UpdateApplication(ctx context.Context, app *entity.RoleApplication) error
}
