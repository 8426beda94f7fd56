package model

import (
	"time"

	"github.com/google/uuid"
)

// ModerationActionModel is the GORM-specific struct for the 'moderation_actions' outbox table.
type ModerationActionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind        string     `gorm:"type:varchar(32);not null"`
	TargetID    uuid.UUID  `gorm:"type:uuid;not null"`
	ComplaintID *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"type:varchar(20);not null;default:pending;index:idx_moderation_actions_status"`
	Attempts    int        `gorm:"not null;default:0"`
	LastError   string     `gorm:"type:text"`
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ModerationActionModel) TableName() string {
	return "moderation_actions"
}
