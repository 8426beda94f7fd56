package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the marketplace. Identity is resolved by the auth
// boundary; the domain only reads the role and the moderation flag.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      Role
	IsBanned  bool
	BannedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
