package impl

import (
	"context"
	"log/slog"

	deliverycontext "rituality/internal/delivery/context"
	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// homeownerService implements the HomeownerUsecase interface.
type homeownerService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	logger       *slog.Logger
}

// HomeownerServiceParams holds dependencies for homeownerService, injected by Fx.
type HomeownerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	PropertyRepo repository.PropertyRepository
	Logger       *slog.Logger
}

// NewHomeownerService is the constructor for homeownerService.
func NewHomeownerService(params HomeownerServiceParams) usecase.HomeownerUsecase {
	return &homeownerService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		propertyRepo: params.PropertyRepo,
		logger:       params.Logger,
	}
}

func (srv *homeownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the homeowner profile.
func (srv *homeownerService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.HomeownerProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if user.Homeowner == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotCreated, "homeowner profile missing")
	}

	return user.Homeowner, nil
}

// CreateProfile creates the profile and flips profile_created on the user.
func (srv *homeownerService) CreateProfile(ctx context.Context, input *usecase.HomeownerProfileInput) (*entity.HomeownerProfile, error) {
	profile := &entity.HomeownerProfile{
		UserID: input.UserID,
		Phone:  input.Phone,
		City:   input.City,
		Bio:    input.Bio,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load account")
		}
		if user.Homeowner != nil {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "homeowner profile exists")
		}

		if saveErr := userRepo.SaveHomeownerProfile(ctx, profile); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save homeowner profile")
		}

		user.ProfileCreated = true

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create homeowner profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile creation transaction")
	}

	return profile, nil
}

// UpdateProfile modifies an existing profile.
func (srv *homeownerService) UpdateProfile(ctx context.Context, input *usecase.HomeownerProfileInput) (*entity.HomeownerProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if user.Homeowner == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotCreated, "homeowner profile missing")
	}

	profile := user.Homeowner
	profile.Phone = input.Phone
	profile.City = input.City
	profile.Bio = input.Bio

	if err := srv.userRepo.SaveHomeownerProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save homeowner profile")
	}

	return profile, nil
}

// ListProperties returns all properties of the homeowner.
func (srv *homeownerService) ListProperties(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.FindPropertiesByHomeowner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

// CreateProperty adds one property to the homeowner's inventory.
func (srv *homeownerService) CreateProperty(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
	property := &entity.Property{
		HomeownerID:  input.HomeownerID,
		Label:        input.Label,
		AddressLine:  input.AddressLine,
		City:         input.City,
		PostalCode:   input.PostalCode,
		PropertyType: input.PropertyType,
		Rooms:        input.Rooms,
		AreaSqm:      input.AreaSqm,
	}

	if err := srv.propertyRepo.CreateProperty(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.log(ctx).Debug("Property created", slog.Any("propertyID", property.ID))

	return property, nil
}

// UpdateProperty modifies a property after checking ownership.
func (srv *homeownerService) UpdateProperty(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
	property, err := srv.loadOwnedProperty(ctx, input.HomeownerID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	property.Label = input.Label
	property.AddressLine = input.AddressLine
	property.City = input.City
	property.PostalCode = input.PostalCode
	property.PropertyType = input.PropertyType
	property.Rooms = input.Rooms
	property.AreaSqm = input.AreaSqm

	if err := srv.propertyRepo.UpdateProperty(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to update property")
	}

	return property, nil
}

// DeleteProperty removes a property after checking ownership.
func (srv *homeownerService) DeleteProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	if _, err := srv.loadOwnedProperty(ctx, userID, propertyID); err != nil {
		return err
	}

	if err := srv.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		return errors.Wrap(err, "failed to delete property")
	}

	srv.log(ctx).Info("Property deleted", slog.Any("propertyID", propertyID))

	return nil
}

// ListProjects returns all projects of the homeowner.
func (srv *homeownerService) ListProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	projects, err := srv.propertyRepo.FindProjectsByHomeowner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// CreateProject opens a project under one of the homeowner's properties.
func (srv *homeownerService) CreateProject(ctx context.Context, input *usecase.ProjectInput) (*entity.Project, error) {
	if _, err := srv.loadOwnedProperty(ctx, input.HomeownerID, input.PropertyID); err != nil {
		return nil, err
	}

	project := &entity.Project{
		PropertyID:  input.PropertyID,
		HomeownerID: input.HomeownerID,
		Title:       input.Title,
		Description: input.Description,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
	}

	if err := srv.propertyRepo.CreateProject(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Debug("Project created", slog.Any("projectID", project.ID))

	return project, nil
}

// loadOwnedProperty fetches a property and verifies it belongs to the caller.
// Foreign properties surface as NotFound so ownership cannot be probed.
func (srv *homeownerService) loadOwnedProperty(ctx context.Context, userID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "property not found")
		}

		return nil, errors.Wrap(err, "failed to load property")
	}
	if property.HomeownerID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "property not found")
	}

	return property, nil
}
