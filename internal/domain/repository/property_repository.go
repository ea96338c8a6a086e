// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for property/project persistence.
var (
	// ErrPropertyNotFound is returned when a property is not found.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
)

// PropertyRepository defines persistence for homeowner properties and their projects.
type PropertyRepository interface {
	// CreateProperty persists a new property.
	CreateProperty(ctx context.Context, property *entity.Property) error

	// FindPropertyByID retrieves a property by its unique ID.
	FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindPropertiesByHomeowner retrieves all properties of a homeowner.
	FindPropertiesByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*entity.Property, error)

	// UpdateProperty modifies an existing property.
	UpdateProperty(ctx context.Context, property *entity.Property) error

	// DeleteProperty removes a property; its projects cascade away with it.
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	// CreateProject persists a new project under a property.
	CreateProject(ctx context.Context, project *entity.Project) error

	// FindProjectByID retrieves a project by its unique ID.
	FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindProjectsByHomeowner retrieves all projects of a homeowner.
	FindProjectsByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*entity.Project, error)
}
