package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitApplicationInput defines a request to become a seller or a shipper.
// The shop fields are required for sellers.
type SubmitApplicationInput struct {
	RequestedRole   entity.Role
	Reason          string
	ShopName        string
	ShopDescription string
	ShopAddress     string
	ShopPhone       string
}

// RoleApplicationUsecase defines the interface for role application use cases.
type RoleApplicationUsecase interface {
	SubmitApplication(ctx context.Context, userID uuid.UUID, input SubmitApplicationInput) (*entity.RoleApplication, error)
	ListMyApplications(ctx context.Context, userID uuid.UUID) ([]*entity.RoleApplication, error)
	ListPendingApplications(ctx context.Context) ([]*entity.RoleApplication, error)

	// ApproveApplication changes the user's role and, for sellers, opens the shop.
	ApproveApplication(ctx context.Context, reviewerID, applicationID uuid.UUID) (*entity.RoleApplication, error)

	RejectApplication(ctx context.Context, reviewerID, applicationID uuid.UUID, reason string) (*entity.RoleApplication, error)
}
