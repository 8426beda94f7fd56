// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case, as resolved from the bearer token.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the actor moderates the marketplace.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}
