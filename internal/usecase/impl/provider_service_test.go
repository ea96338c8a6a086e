package impl

import (
	"context"
	"testing"

	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	mockrepo "rituality/internal/mocks/repository"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// providerServiceFixtures holds all test dependencies for provider service tests.
type providerServiceFixtures struct {
	service  usecase.ProviderUsecase
	factory  *mockrepo.MockRepositoryFactory
	userRepo *mockrepo.MockUserRepository
}

func createTestProviderService(t *testing.T) providerServiceFixtures {
	factory := mockrepo.NewMockRepositoryFactory(t)
	userRepo := mockrepo.NewMockUserRepository(t)

	service := NewProviderService(ProviderServiceParams{
		TxManager: &mockrepo.StubTransactionManager{Factory: factory},
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return providerServiceFixtures{
		service:  service,
		factory:  factory,
		userRepo: userRepo,
	}
}

func TestProviderService_CreateDesignerProfile_Success(t *testing.T) {
	fixtures := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, UserType: entity.UserTypeDesigner}

	fixtures.factory.On("UserRepo").Return(fixtures.userRepo)
	fixtures.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fixtures.userRepo.On("SaveDesignerProfile", ctx, mock.AnythingOfType("*entity.DesignerProfile")).
		Run(func(args mock.Arguments) {
			// Client input can never arrive pre-verified.
			assert.False(t, args.Get(1).(*entity.DesignerProfile).Verified)
		}).
		Return(nil)
	fixtures.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			assert.True(t, args.Get(1).(*entity.User).ProfileCreated)
		}).
		Return(nil)

	profile, err := fixtures.service.CreateDesignerProfile(ctx, &usecase.DesignerProfileInput{
		UserID:    userID,
		City:      "Aarhus",
		Styles:    []string{"scandinavian", "japandi"},
		BudgetMin: 5_000,
		BudgetMax: 50_000,
	})

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, []string{"scandinavian", "japandi"}, profile.Styles)
	assert.False(t, profile.Verified)
}

func TestProviderService_CreateContractorProfile_AlreadyExists(t *testing.T) {
	fixtures := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:         userID,
		UserType:   entity.UserTypeContractor,
		Contractor: &entity.ContractorProfile{UserID: userID},
	}

	fixtures.factory.On("UserRepo").Return(fixtures.userRepo)
	fixtures.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	profile, err := fixtures.service.CreateContractorProfile(ctx, &usecase.ContractorProfileInput{UserID: userID})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProviderService_UpdateDesignerProfile_KeepsVerifiedFlag(t *testing.T) {
	fixtures := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		UserType: entity.UserTypeDesigner,
		Designer: &entity.DesignerProfile{UserID: userID, City: "Odense", Verified: true},
	}

	fixtures.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fixtures.userRepo.On("SaveDesignerProfile", ctx, mock.AnythingOfType("*entity.DesignerProfile")).Return(nil)

	profile, err := fixtures.service.UpdateDesignerProfile(ctx, &usecase.DesignerProfileInput{
		UserID: userID,
		City:   "Copenhagen",
	})

	require.NoError(t, err)
	assert.Equal(t, "Copenhagen", profile.City)
	// Updates never touch the operator-set verification.
	assert.True(t, profile.Verified)
}

func TestProviderService_GetContractorProfile_NotCreated(t *testing.T) {
	fixtures := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()
	fixtures.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, UserType: entity.UserTypeContractor}, nil)

	profile, err := fixtures.service.GetContractorProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotCreated))
}
