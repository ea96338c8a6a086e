package impl

import (
	"context"
	"testing"

	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	mockrepo "rituality/internal/mocks/repository"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// homeownerServiceFixtures holds all test dependencies for homeowner service tests.
type homeownerServiceFixtures struct {
	service      usecase.HomeownerUsecase
	factory      *mockrepo.MockRepositoryFactory
	userRepo     *mockrepo.MockUserRepository
	propertyRepo *mockrepo.MockPropertyRepository
}

func createTestHomeownerService(t *testing.T) homeownerServiceFixtures {
	factory := mockrepo.NewMockRepositoryFactory(t)
	userRepo := mockrepo.NewMockUserRepository(t)
	propertyRepo := mockrepo.NewMockPropertyRepository(t)

	service := NewHomeownerService(HomeownerServiceParams{
		TxManager:    &mockrepo.StubTransactionManager{Factory: factory},
		UserRepo:     userRepo,
		PropertyRepo: propertyRepo,
		Logger:       newDiscardLogger(),
	})

	return homeownerServiceFixtures{
		service:      service,
		factory:      factory,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

func TestHomeownerService_CreateProfile_Success(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, UserType: entity.UserTypeHomeowner}

	fixtures.factory.On("UserRepo").Return(fixtures.userRepo)
	fixtures.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fixtures.userRepo.On("SaveHomeownerProfile", ctx, mock.AnythingOfType("*entity.HomeownerProfile")).Return(nil)
	fixtures.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			assert.True(t, args.Get(1).(*entity.User).ProfileCreated)
		}).
		Return(nil)

	profile, err := fixtures.service.CreateProfile(ctx, &usecase.HomeownerProfileInput{
		UserID: userID,
		Phone:  "+45 11 22 33 44",
		City:   "Copenhagen",
		Bio:    "Renovating a 1930s townhouse.",
	})

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Copenhagen", profile.City)
}

func TestHomeownerService_CreateProfile_AlreadyExists(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:        userID,
		UserType:  entity.UserTypeHomeowner,
		Homeowner: &entity.HomeownerProfile{UserID: userID},
	}

	fixtures.factory.On("UserRepo").Return(fixtures.userRepo)
	fixtures.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	profile, err := fixtures.service.CreateProfile(ctx, &usecase.HomeownerProfileInput{UserID: userID})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestHomeownerService_GetProfile_NotCreated(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	userID := uuid.New()
	fixtures.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, UserType: entity.UserTypeHomeowner}, nil)

	profile, err := fixtures.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotCreated))
}

func TestHomeownerService_UpdateProperty_ForeignLooksMissing(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	property := &entity.Property{ID: uuid.New(), HomeownerID: uuid.New()}

	fixtures.propertyRepo.On("FindPropertyByID", ctx, property.ID).Return(property, nil)

	updated, err := fixtures.service.UpdateProperty(ctx, &usecase.PropertyInput{
		HomeownerID: uuid.New(), // Not the owner.
		PropertyID:  property.ID,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestHomeownerService_DeleteProperty_Success(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	property := &entity.Property{ID: uuid.New(), HomeownerID: homeownerID}

	fixtures.propertyRepo.On("FindPropertyByID", ctx, property.ID).Return(property, nil)
	fixtures.propertyRepo.On("DeleteProperty", ctx, property.ID).Return(nil)

	err := fixtures.service.DeleteProperty(ctx, homeownerID, property.ID)

	require.NoError(t, err)
}

func TestHomeownerService_CreateProject_ChecksPropertyOwnership(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	property := &entity.Property{ID: uuid.New(), HomeownerID: homeownerID}

	fixtures.propertyRepo.On("FindPropertyByID", ctx, property.ID).Return(property, nil)
	fixtures.propertyRepo.On("CreateProject", ctx, mock.AnythingOfType("*entity.Project")).Return(nil)

	project, err := fixtures.service.CreateProject(ctx, &usecase.ProjectInput{
		HomeownerID: homeownerID,
		PropertyID:  property.ID,
		Title:       "Kitchen remodel",
		BudgetMin:   10_000,
		BudgetMax:   25_000,
	})

	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, property.ID, project.PropertyID)
}

func TestHomeownerService_CreateProject_MissingProperty(t *testing.T) {
	fixtures := createTestHomeownerService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	fixtures.propertyRepo.On("FindPropertyByID", ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	project, err := fixtures.service.CreateProject(ctx, &usecase.ProjectInput{
		HomeownerID: uuid.New(),
		PropertyID:  propertyID,
		Title:       "Kitchen remodel",
	})

	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
