package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of a role application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// RoleApplication is a customer's request to become a seller or a shipper.
// The shop fields bootstrap the shop created when a seller is approved.
type RoleApplication struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RequestedRole   Role
	Reason          string
	ShopName        string
	ShopDescription string
	ShopAddress     string
	ShopPhone       string
	Status          ApplicationStatus
	ReviewerID      *uuid.UUID
	RejectionReason string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPending reports whether the application still awaits review.
func (a *RoleApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
