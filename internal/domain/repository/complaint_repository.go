package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository defines complaint persistence operations.
type ComplaintRepository interface {
	// CreateComplaint inserts the complaint together with its images.
	CreateComplaint(ctx context.Context, complaint *entity.Complaint) error

	// FindComplaintByID returns the complaint with responses (oldest first) and images.
	FindComplaintByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)
	// FindComplaintByIDForUpdate reads the complaint under a row lock so
	// status transitions serialise.
	FindComplaintByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	ListComplaintsByComplainant(ctx context.Context, complainantID uuid.UUID) ([]*entity.Complaint, error)

	// ListComplaints returns complaints in the given status, or all when status is empty.
	ListComplaints(ctx context.Context, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error)

	// UpdateComplaint saves the workflow fields of the complaint.
	UpdateComplaint(ctx context.Context, complaint *entity.Complaint) error

	DeleteComplaint(ctx context.Context, id uuid.UUID) error
	CreateResponse(ctx context.Context, response *entity.ComplaintResponse) error
}
