// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the user operations the marketplace needs.
// Account creation belongs to the identity provider.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateRole changes the role of a user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// SetBanned sets or clears the ban flag. A nil bannedAt clears it.
	SetBanned(ctx context.Context, id uuid.UUID, bannedAt *time.Time) error
}
