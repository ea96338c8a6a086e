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

// providerService implements the ProviderUsecase interface for designers
// and contractors. The verified flag never passes through here; it is
// operator-set only.
type providerService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProviderServiceParams holds dependencies for providerService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDesignerProfile returns the designer profile.
func (srv *providerService) GetDesignerProfile(ctx context.Context, userID uuid.UUID) (*entity.DesignerProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if user.Designer == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotCreated, "designer profile missing")
	}

	return user.Designer, nil
}

// CreateDesignerProfile creates the profile and flips profile_created.
func (srv *providerService) CreateDesignerProfile(ctx context.Context, input *usecase.DesignerProfileInput) (*entity.DesignerProfile, error) {
	profile := &entity.DesignerProfile{
		UserID:    input.UserID,
		Phone:     input.Phone,
		City:      input.City,
		Bio:       input.Bio,
		Styles:    input.Styles,
		BudgetMin: input.BudgetMin,
		BudgetMax: input.BudgetMax,
	}

	err := srv.createProfile(ctx, input.UserID,
		func(user *entity.User) bool { return user.Designer != nil },
		func(userRepo repository.UserRepository) error {
			return userRepo.SaveDesignerProfile(ctx, profile)
		})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateDesignerProfile modifies an existing designer profile.
func (srv *providerService) UpdateDesignerProfile(ctx context.Context, input *usecase.DesignerProfileInput) (*entity.DesignerProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if user.Designer == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotCreated, "designer profile missing")
	}

	profile := user.Designer
	profile.Phone = input.Phone
	profile.City = input.City
	profile.Bio = input.Bio
	profile.Styles = input.Styles
	profile.BudgetMin = input.BudgetMin
	profile.BudgetMax = input.BudgetMax

	if err := srv.userRepo.SaveDesignerProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save designer profile")
	}

	return profile, nil
}

// GetContractorProfile returns the contractor profile.
func (srv *providerService) GetContractorProfile(ctx context.Context, userID uuid.UUID) (*entity.ContractorProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if user.Contractor == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotCreated, "contractor profile missing")
	}

	return user.Contractor, nil
}

// CreateContractorProfile creates the profile and flips profile_created.
func (srv *providerService) CreateContractorProfile(ctx context.Context, input *usecase.ContractorProfileInput) (*entity.ContractorProfile, error) {
	profile := &entity.ContractorProfile{
		UserID:    input.UserID,
		Phone:     input.Phone,
		City:      input.City,
		Bio:       input.Bio,
		Trades:    input.Trades,
		BudgetMin: input.BudgetMin,
		BudgetMax: input.BudgetMax,
	}

	err := srv.createProfile(ctx, input.UserID,
		func(user *entity.User) bool { return user.Contractor != nil },
		func(userRepo repository.UserRepository) error {
			return userRepo.SaveContractorProfile(ctx, profile)
		})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateContractorProfile modifies an existing contractor profile.
func (srv *providerService) UpdateContractorProfile(ctx context.Context, input *usecase.ContractorProfileInput) (*entity.ContractorProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if user.Contractor == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotCreated, "contractor profile missing")
	}

	profile := user.Contractor
	profile.Phone = input.Phone
	profile.City = input.City
	profile.Bio = input.Bio
	profile.Trades = input.Trades
	profile.BudgetMin = input.BudgetMin
	profile.BudgetMax = input.BudgetMax

	if err := srv.userRepo.SaveContractorProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save contractor profile")
	}

	return profile, nil
}

// createProfile runs the shared create flow: no existing profile, save, flip
// profile_created, all in one transaction.
func (srv *providerService) createProfile(ctx context.Context, userID uuid.UUID, hasProfile func(*entity.User) bool, save func(repository.UserRepository) error) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load account")
		}
		if hasProfile(user) {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "profile exists")
		}

		if saveErr := save(userRepo); saveErr != nil {
			return errors.Wrap(saveErr, "failed to save profile")
		}

		user.ProfileCreated = true

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create provider profile", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute profile creation transaction")
	}

	return nil
}
