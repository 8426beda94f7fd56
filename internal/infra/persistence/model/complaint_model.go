package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel is the GORM-specific struct for the 'complaints' table.
type ComplaintModel struct {
	ID             uuid.UUID                 `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Number         string                    `gorm:"type:varchar(32);not null;uniqueIndex:uq_complaints_number"`
	ComplainantID  uuid.UUID                 `gorm:"type:uuid;not null;index:idx_complaints_complainant"`
	Category       string                    `gorm:"type:varchar(32);not null"`
	Subject        string                    `gorm:"type:varchar(255);not null"`
	Description    string                    `gorm:"type:text;not null"`
	OrderID        *uuid.UUID                `gorm:"type:uuid"`
	TargetUserID   *uuid.UUID                `gorm:"type:uuid"`
	TargetShopID   *uuid.UUID                `gorm:"type:uuid"`
	Status         string                    `gorm:"type:varchar(20);not null;default:pending;index:idx_complaints_status"`
	AssigneeID     *uuid.UUID                `gorm:"type:uuid"`
	Decision       *string                   `gorm:"type:varchar(20)"`
	DecisionReason string                    `gorm:"type:text"`
	AdminNote      string                    `gorm:"type:text"`
	ResolvedAt     *time.Time
	Responses      []*ComplaintResponseModel `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
	Images         []*ComplaintImageModel    `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}

// ComplaintResponseModel is the GORM-specific struct for the 'complaint_responses' table.
type ComplaintResponseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index:idx_complaint_responses_complaint"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null"`
	Message     string    `gorm:"type:text;not null"`
	IsInternal  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintResponseModel) TableName() string {
	return "complaint_responses"
}

// ComplaintImageModel is the GORM-specific struct for the 'complaint_images' table.
type ComplaintImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index:idx_complaint_images_complaint"`
	URL         string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintImageModel) TableName() string {
	return "complaint_images"
}
