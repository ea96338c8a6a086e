package postgres

import (
	"context"

	"rituality/internal/domain/entity"
	domainErrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/errors"
	"rituality/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository is the GORM implementation of the domain's UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user with permissions and the type-specific profile preloaded.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Preload("HomeownerProfile").
		Preload("DesignerProfile").
		Preload("ContractorProfile").
		First(&userModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserEntity(&userModel), nil
}

// FindByEmail retrieves a user by email, without profile preloads.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&userModel, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserEntity(&userModel), nil
}

// Create persists a new user together with its permissions row.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := fromUserEntity(user)
	if user.Permissions != nil {
		userModel.Permissions = fromPermissionsEntity(user.Permissions)
	}

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainErrors.ErrUserAlreadyExists
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Write back the database-generated values.
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	if user.Permissions != nil {
		user.Permissions.UserID = userModel.ID
	}

	return nil
}

// Update modifies the core user row.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"name":              user.Name,
		"password_hash":     user.PasswordHash,
		"role_id":           user.RoleID,
		"profile_created":   user.ProfileCreated,
		"email_verified_at": user.EmailVerifiedAt,
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePermissions replaces the permission toggles for a user.
func (r *userRepository) UpdatePermissions(ctx context.Context, perms *entity.UserPermissions) error {
	updates := map[string]any{
		"calendar_access":     perms.CalendarAccess,
		"notification_access": perms.NotificationAccess,
		"contacts_access":     perms.ContactsAccess,
		"location_access":     perms.LocationAccess,
		"marketing_opt_in":    perms.MarketingOptIn,
		"ritual_opt_in":       perms.RitualOptIn,
		"community_opt_in":    perms.CommunityOptIn,
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserPermissionsModel{}).
		Where("user_id = ?", perms.UserID).
		Updates(updates)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to update user permissions")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SaveHomeownerProfile upserts the homeowner profile row keyed by user_id.
func (r *userRepository) SaveHomeownerProfile(ctx context.Context, profile *entity.HomeownerProfile) error {
	profileModel := &model.HomeownerProfileModel{
		UserID:    profile.UserID,
		Phone:     profile.Phone,
		City:      profile.City,
		Bio:       profile.Bio,
		AvatarKey: profile.AvatarKey,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profileModel).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to save homeowner profile")
	}

	return nil
}

// SaveDesignerProfile upserts the designer profile row keyed by user_id.
// The verified flag is intentionally left out of the upsert columns; it is
// only ever changed by operators directly.
func (r *userRepository) SaveDesignerProfile(ctx context.Context, profile *entity.DesignerProfile) error {
	profileModel := &model.DesignerProfileModel{
		UserID:    profile.UserID,
		Phone:     profile.Phone,
		City:      profile.City,
		Bio:       profile.Bio,
		AvatarKey: profile.AvatarKey,
		Styles:    profile.Styles,
		BudgetMin: profile.BudgetMin,
		BudgetMax: profile.BudgetMax,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"phone", "city", "bio", "avatar_key",
				"styles", "budget_min", "budget_max", "updated_at",
			}),
		}).
		Create(profileModel).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to save designer profile")
	}

	return nil
}

// SaveContractorProfile upserts the contractor profile row keyed by user_id.
func (r *userRepository) SaveContractorProfile(ctx context.Context, profile *entity.ContractorProfile) error {
	profileModel := &model.ContractorProfileModel{
		UserID:    profile.UserID,
		Phone:     profile.Phone,
		City:      profile.City,
		Bio:       profile.Bio,
		AvatarKey: profile.AvatarKey,
		Trades:    profile.Trades,
		BudgetMin: profile.BudgetMin,
		BudgetMax: profile.BudgetMax,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"phone", "city", "bio", "avatar_key",
				"trades", "budget_min", "budget_max", "updated_at",
			}),
		}).
		Create(profileModel).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to save contractor profile")
	}

	return nil
}

// toUserEntity converts a persistence model into a domain entity.
func toUserEntity(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		UserType:        entity.UserType(m.UserType),
		RoleID:          m.RoleID,
		ProfileCreated:  m.ProfileCreated,
		EmailVerifiedAt: m.EmailVerifiedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.Permissions != nil {
		user.Permissions = toPermissionsEntity(m.Permissions)
	}
	if m.HomeownerProfile != nil {
		user.Homeowner = &entity.HomeownerProfile{
			UserID:    m.HomeownerProfile.UserID,
			Phone:     m.HomeownerProfile.Phone,
			City:      m.HomeownerProfile.City,
			Bio:       m.HomeownerProfile.Bio,
			AvatarKey: m.HomeownerProfile.AvatarKey,
			UpdatedAt: m.HomeownerProfile.UpdatedAt,
		}
	}
	if m.DesignerProfile != nil {
		user.Designer = &entity.DesignerProfile{
			UserID:    m.DesignerProfile.UserID,
			Phone:     m.DesignerProfile.Phone,
			City:      m.DesignerProfile.City,
			Bio:       m.DesignerProfile.Bio,
			AvatarKey: m.DesignerProfile.AvatarKey,
			Styles:    m.DesignerProfile.Styles,
			BudgetMin: m.DesignerProfile.BudgetMin,
			BudgetMax: m.DesignerProfile.BudgetMax,
			Verified:  m.DesignerProfile.Verified,
			UpdatedAt: m.DesignerProfile.UpdatedAt,
		}
	}
	if m.ContractorProfile != nil {
		user.Contractor = &entity.ContractorProfile{
			UserID:    m.ContractorProfile.UserID,
			Phone:     m.ContractorProfile.Phone,
			City:      m.ContractorProfile.City,
			Bio:       m.ContractorProfile.Bio,
			AvatarKey: m.ContractorProfile.AvatarKey,
			Trades:    m.ContractorProfile.Trades,
			BudgetMin: m.ContractorProfile.BudgetMin,
			BudgetMax: m.ContractorProfile.BudgetMax,
			Verified:  m.ContractorProfile.Verified,
			UpdatedAt: m.ContractorProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserEntity converts a domain entity into a persistence model.
func fromUserEntity(e *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:              e.ID,
		Email:           e.Email,
		Name:            e.Name,
		PasswordHash:    e.PasswordHash,
		UserType:        e.UserType.String(),
		RoleID:          e.RoleID,
		ProfileCreated:  e.ProfileCreated,
		EmailVerifiedAt: e.EmailVerifiedAt,
	}
}

func toPermissionsEntity(m *model.UserPermissionsModel) *entity.UserPermissions {
	return &entity.UserPermissions{
		UserID:             m.UserID,
		CalendarAccess:     m.CalendarAccess,
		NotificationAccess: m.NotificationAccess,
		ContactsAccess:     m.ContactsAccess,
		LocationAccess:     m.LocationAccess,
		MarketingOptIn:     m.MarketingOptIn,
		RitualOptIn:        m.RitualOptIn,
		CommunityOptIn:     m.CommunityOptIn,
		UpdatedAt:          m.UpdatedAt,
	}
}

func fromPermissionsEntity(e *entity.UserPermissions) *model.UserPermissionsModel {
	return &model.UserPermissionsModel{
		UserID:             e.UserID,
		CalendarAccess:     e.CalendarAccess,
		NotificationAccess: e.NotificationAccess,
		ContactsAccess:     e.ContactsAccess,
		LocationAccess:     e.LocationAccess,
		MarketingOptIn:     e.MarketingOptIn,
		RitualOptIn:        e.RitualOptIn,
		CommunityOptIn:     e.CommunityOptIn,
	}
}
