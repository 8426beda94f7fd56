package entity

import (
	"time"

	"github.com/google/uuid"
)

// ModerationActionKind is the side effect a moderation action performs.
type ModerationActionKind string

const (
	ModerationUnbanUser ModerationActionKind = "unban_user"
	ModerationUnbanShop ModerationActionKind = "unban_shop"
)

// ModerationActionStatus tracks delivery of a moderation action.
type ModerationActionStatus string

const (
	ModerationActionPending ModerationActionStatus = "pending"
	ModerationActionDone    ModerationActionStatus = "done"
	ModerationActionFailed  ModerationActionStatus = "failed"
)

// ModerationAction is an outbox record written together with the complaint
// decision that requires it, and applied after the decision commits.
type ModerationAction struct {
	ID          uuid.UUID
	Kind        ModerationActionKind
	TargetID    uuid.UUID
	ComplaintID *uuid.UUID
	Status      ModerationActionStatus
	Attempts    int
	LastError   string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}
