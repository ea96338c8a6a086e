// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with permissions
	// and the type-specific profile preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, including its permissions row, to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePermissions replaces the permission toggles for a user.
	UpdatePermissions(ctx context.Context, perms *entity.UserPermissions) error

	// SaveHomeownerProfile inserts or updates the homeowner profile for a user.
	SaveHomeownerProfile(ctx context.Context, profile *entity.HomeownerProfile) error

	// SaveDesignerProfile inserts or updates the designer profile for a user.
	SaveDesignerProfile(ctx context.Context, profile *entity.DesignerProfile) error

	// SaveContractorProfile inserts or updates the contractor profile for a user.
	SaveContractorProfile(ctx context.Context, profile *entity.ContractorProfile) error
}
