package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is a storefront owned by a seller.
type Shop struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Address     string
	Phone       string
	IsBanned    bool
	BannedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
