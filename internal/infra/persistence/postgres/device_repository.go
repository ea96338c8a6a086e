package postgres

import (
	"context"
	"time"

	"rituality/internal/domain/entity"
	domainErrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/errors"
	"rituality/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceRepository is the GORM implementation of the domain's DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Create persists a new device session row.
func (r *deviceRepository) Create(ctx context.Context, device *entity.UserDevice) error {
	deviceModel := fromDeviceEntity(device)

	if err := r.db.WithContext(ctx).Create(deviceModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create user device")
	}

	device.ID = deviceModel.ID
	device.CreatedAt = deviceModel.CreatedAt
	device.UpdatedAt = deviceModel.UpdatedAt

	return nil
}

// FindByID retrieves a device by its unique ID.
func (r *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceModel model.UserDeviceModel
	err := r.db.WithContext(ctx).First(&deviceModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find device by id")
	}

	return toDeviceEntity(&deviceModel), nil
}

// FindByRefreshTokenHash retrieves an active device by its stored refresh token hash.
func (r *deviceRepository) FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.UserDevice, error) {
	var deviceModel model.UserDeviceModel
	err := r.db.WithContext(ctx).
		Where("refresh_token_hash = ? AND is_active = ?", tokenHash, true).
		First(&deviceModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find device by refresh token")
	}

	device := toDeviceEntity(&deviceModel)
	if !device.Usable(time.Now()) {
		return nil, repository.ErrDeviceExpired
	}

	return device, nil
}

// FindActiveByUserID retrieves all active, unexpired devices for a user, newest first.
func (r *deviceRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []model.UserDeviceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND refresh_expires_at > ?", userID, true, time.Now()).
		Order("last_used_at DESC").
		Find(&deviceModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list active devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for i := range deviceModels {
		devices = append(devices, toDeviceEntity(&deviceModels[i]))
	}

	return devices, nil
}

// Update modifies an existing device row.
func (r *deviceRepository) Update(ctx context.Context, device *entity.UserDevice) error {
	updates := map[string]any{
		"token_hash":         device.TokenHash,
		"refresh_token_hash": device.RefreshTokenHash,
		"token_expires_at":   device.TokenExpiresAt,
		"refresh_expires_at": device.RefreshExpiresAt,
		"fcm_token":          device.FCMToken,
		"is_active":          device.IsActive,
		"last_used_at":       device.LastUsedAt,
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", device.ID).
		Updates(updates)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// Deactivate marks one device inactive, ending its session.
func (r *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateAllByUserID marks every device of a user inactive.
func (r *deviceRepository) DeactivateAllByUserID(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
	if err != nil {
		return domainErrors.NewDatabaseExecuteError(err, "failed to deactivate all devices")
	}

	return nil
}

// CountActiveByUserID returns the number of active, unexpired devices for a user.
func (r *deviceRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id = ? AND is_active = ? AND refresh_expires_at > ?", userID, true, time.Now()).
		Count(&count).Error
	if err != nil {
		return 0, domainErrors.NewDatabaseExecuteError(err, "failed to count active devices")
	}

	return int(count), nil
}

// DeleteExpired removes rows whose refresh tokens expired.
func (r *deviceRepository) DeleteExpired(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("refresh_expires_at <= ?", time.Now()).
		Delete(&model.UserDeviceModel{}).Error
	if err != nil {
		return domainErrors.NewDatabaseExecuteError(err, "failed to delete expired devices")
	}

	return nil
}

func toDeviceEntity(m *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:               m.ID,
		UserID:           m.UserID,
		TokenHash:        m.TokenHash,
		RefreshTokenHash: m.RefreshTokenHash,
		TokenExpiresAt:   m.TokenExpiresAt,
		RefreshExpiresAt: m.RefreshExpiresAt,
		DeviceType:       m.DeviceType,
		DeviceName:       m.DeviceName,
		UserAgent:        m.UserAgent,
		IPAddress:        m.IPAddress,
		FCMToken:         m.FCMToken,
		IsActive:         m.IsActive,
		LastUsedAt:       m.LastUsedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromDeviceEntity(e *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:               e.ID,
		UserID:           e.UserID,
		TokenHash:        e.TokenHash,
		RefreshTokenHash: e.RefreshTokenHash,
		TokenExpiresAt:   e.TokenExpiresAt,
		RefreshExpiresAt: e.RefreshExpiresAt,
		DeviceType:       e.DeviceType,
		DeviceName:       e.DeviceName,
		UserAgent:        e.UserAgent,
		IPAddress:        e.IPAddress,
		FCMToken:         e.FCMToken,
		IsActive:         e.IsActive,
		LastUsedAt:       e.LastUsedAt,
	}
}
