package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateComplaintInput defines the data required to file a complaint.
type CreateComplaintInput struct {
	Category     entity.ComplaintCategory
	Subject      string
	Description  string
	OrderID      *uuid.UUID
	TargetUserID *uuid.UUID
	TargetShopID *uuid.UUID
	ImageURLs    []string
}

// DecisionInput is an admin verdict on a complaint.
type DecisionInput struct {
	Decision  entity.ComplaintDecision
	Reason    string
	AdminNote string
}

// AddResponseInput is a message added to a complaint thread.
type AddResponseInput struct {
	Message    string
	IsInternal bool
}

// ComplaintUsecase defines the interface for the complaint workflow.
type ComplaintUsecase interface {
	CreateComplaint(ctx context.Context, complainantID uuid.UUID, input CreateComplaintInput) (*entity.Complaint, error)

	// GetComplaint returns the complaint to its complainant or to an admin.
	GetComplaint(ctx context.Context, actor Actor, complaintID uuid.UUID) (*entity.Complaint, error)

	ListMyComplaints(ctx context.Context, userID uuid.UUID) ([]*entity.Complaint, error)

	// ListComplaints lists complaints for admins, filtered by status when it is not empty.
	ListComplaints(ctx context.Context, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error)

	// AssignComplaint sets the assignee and moves the complaint under review.
	AssignComplaint(ctx context.Context, complaintID, assigneeID uuid.UUID) (*entity.Complaint, error)

	// MakeDecision resolves or rejects the complaint. Approving a ban appeal
	// schedules the matching unban in the same transaction.
	MakeDecision(ctx context.Context, adminID, complaintID uuid.UUID, input DecisionInput) (*entity.Complaint, error)

	AddResponse(ctx context.Context, actor Actor, complaintID uuid.UUID, input AddResponseInput) (*entity.ComplaintResponse, error)

	// DeleteComplaint removes a pending complaint of its complainant.
	DeleteComplaint(ctx context.Context, userID, complaintID uuid.UUID) error

	CloseComplaint(ctx context.Context, actor Actor, complaintID uuid.UUID) (*entity.Complaint, error)
}
