package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ComplaintStatus is the state of a complaint in the moderation workflow.
type ComplaintStatus string

const (
	ComplaintStatusPending     ComplaintStatus = "pending"
	ComplaintStatusUnderReview ComplaintStatus = "under_review"
	ComplaintStatusResolved    ComplaintStatus = "resolved"
	ComplaintStatusRejected    ComplaintStatus = "rejected"
	ComplaintStatusClosed      ComplaintStatus = "closed"
)

var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintStatusPending: {
		ComplaintStatusUnderReview, ComplaintStatusResolved, ComplaintStatusRejected, ComplaintStatusClosed,
	},
	ComplaintStatusUnderReview: {
		ComplaintStatusResolved, ComplaintStatusRejected, ComplaintStatusClosed,
	},
	ComplaintStatusResolved: {ComplaintStatusClosed},
	ComplaintStatusRejected: {ComplaintStatusClosed},
}

// IsValid checks if the status is a known value.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusUnderReview, ComplaintStatusResolved,
		ComplaintStatusRejected, ComplaintStatusClosed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a complaint in status s may move to next.
// Re-assigning a complaint already under review keeps it under review.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	if s == ComplaintStatusUnderReview && next == ComplaintStatusUnderReview {
		return true
	}

	return slices.Contains(complaintTransitions[s], next)
}

// ComplaintCategory classifies what the complaint is about.
type ComplaintCategory string

const (
	ComplaintCategoryOrder      ComplaintCategory = "order"
	ComplaintCategoryProduct    ComplaintCategory = "product"
	ComplaintCategoryShop       ComplaintCategory = "shop"
	ComplaintCategoryShipper    ComplaintCategory = "shipper"
	ComplaintCategoryPayment    ComplaintCategory = "payment"
	ComplaintCategoryAccountBan ComplaintCategory = "account_ban"
	ComplaintCategoryShopBan    ComplaintCategory = "shop_ban"
	ComplaintCategoryOther      ComplaintCategory = "other"
)

// IsValid checks if the category is a known value.
func (c ComplaintCategory) IsValid() bool {
	switch c {
	case ComplaintCategoryOrder, ComplaintCategoryProduct, ComplaintCategoryShop, ComplaintCategoryShipper,
		ComplaintCategoryPayment, ComplaintCategoryAccountBan, ComplaintCategoryShopBan, ComplaintCategoryOther:
		return true
	default:
		return false
	}
}

// IsBanAppeal reports whether approving the complaint lifts a ban.
func (c ComplaintCategory) IsBanAppeal() bool {
	return c == ComplaintCategoryAccountBan || c == ComplaintCategoryShopBan
}

// ComplaintDecision is the admin verdict on a complaint.
type ComplaintDecision string

const (
	ComplaintDecisionApproved ComplaintDecision = "approved"
	ComplaintDecisionRejected ComplaintDecision = "rejected"
)

// IsValid checks if the decision is a known value.
func (d ComplaintDecision) IsValid() bool {
	return d == ComplaintDecisionApproved || d == ComplaintDecisionRejected
}

// ResultingStatus maps the decision to the complaint status it produces.
func (d ComplaintDecision) ResultingStatus() ComplaintStatus {
	if d == ComplaintDecisionApproved {
		return ComplaintStatusResolved
	}

	return ComplaintStatusRejected
}

// Complaint is a dispute filed by a user and resolved by an admin.
type Complaint struct {
	ID             uuid.UUID
	Number         string
	ComplainantID  uuid.UUID
	Category       ComplaintCategory
	Subject        string
	Description    string
	OrderID        *uuid.UUID
	TargetUserID   *uuid.UUID
	TargetShopID   *uuid.UUID
	Status         ComplaintStatus
	AssigneeID     *uuid.UUID
	Decision       *ComplaintDecision
	DecisionReason string
	AdminNote      string
	ResolvedAt     *time.Time
	Responses      []*ComplaintResponse
	Images         []*ComplaintImage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ComplaintResponse is a message in a complaint thread. Internal responses
// are only meant for admins.
type ComplaintResponse struct {
	ID          uuid.UUID
	ComplaintID uuid.UUID
	AuthorID    uuid.UUID
	Message     string
	IsInternal  bool
	CreatedAt   time.Time
}

// ComplaintImage is a piece of evidence attached to a complaint.
type ComplaintImage struct {
	ID          uuid.UUID
	ComplaintID uuid.UUID
	URL         string
	CreatedAt   time.Time
}

// PublicResponses returns the responses visible to non-admin viewers.
func (c *Complaint) PublicResponses() []*ComplaintResponse {
	visible := make([]*ComplaintResponse, 0, len(c.Responses))
	for _, r := range c.Responses {
		if !r.IsInternal {
			visible = append(visible, r)
		}
	}

	return visible
}
