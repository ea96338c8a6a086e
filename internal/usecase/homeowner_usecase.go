package usecase

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// HomeownerProfileInput carries the homeowner profile fields.
type HomeownerProfileInput struct {
	UserID uuid.UUID
	Phone  string
	City   string
	Bio    string
}

// PropertyInput carries the fields for creating or updating a property.
type PropertyInput struct {
	HomeownerID  uuid.UUID
	PropertyID   uuid.UUID // Zero for creation.
	Label        string
	AddressLine  string
	City         string
	PostalCode   string
	PropertyType string
	Rooms        int
	AreaSqm      float64
}

// ProjectInput carries the fields for creating a project under a property.
type ProjectInput struct {
	HomeownerID uuid.UUID
	PropertyID  uuid.UUID
	Title       string
	Description string
	BudgetMin   int
	BudgetMax   int
}

// HomeownerUsecase defines homeowner-scoped operations: the profile plus
// the property and project inventory requests are raised against.
type HomeownerUsecase interface {
	// GetProfile returns the homeowner profile; ErrProfileNotCreated before creation.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.HomeownerProfile, error)

	// CreateProfile creates the profile and flips profile_created on the user.
	CreateProfile(ctx context.Context, input *HomeownerProfileInput) (*entity.HomeownerProfile, error)

	// UpdateProfile modifies an existing profile.
	UpdateProfile(ctx context.Context, input *HomeownerProfileInput) (*entity.HomeownerProfile, error)

	ListProperties(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error)
	CreateProperty(ctx context.Context, input *PropertyInput) (*entity.Property, error)
	UpdateProperty(ctx context.Context, input *PropertyInput) (*entity.Property, error)
	DeleteProperty(ctx context.Context, userID, propertyID uuid.UUID) error

	ListProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
	CreateProject(ctx context.Context, input *ProjectInput) (*entity.Project, error)
}
