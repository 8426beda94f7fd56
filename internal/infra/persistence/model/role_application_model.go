package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleApplicationModel is the GORM-specific struct for the 'role_applications' table.
type RoleApplicationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_role_applications_user"`
	RequestedRole   string     `gorm:"type:varchar(20);not null"`
	Reason          string     `gorm:"type:text"`
	ShopName        string     `gorm:"type:varchar(255)"`
	ShopDescription string     `gorm:"type:text"`
	ShopAddress     string     `gorm:"type:text"`
	ShopPhone       string     `gorm:"type:varchar(32)"`
	Status          string     `gorm:"type:varchar(20);not null;default:pending;index:idx_role_applications_status"`
	ReviewerID      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleApplicationModel) TableName() string {
	return "role_applications"
}
