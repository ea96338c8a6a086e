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

// verificationRepository is the GORM implementation of the domain's VerificationRepository interface.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// Create persists a new verification code. Earlier unused codes of the same
// kind are stamped used so only the newest code validates.
func (r *verificationRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	now := time.Now()

	err := r.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("user_id = ? AND kind = ? AND used_at IS NULL", code.UserID, string(code.Kind)).
		Update("used_at", now).Error
	if err != nil {
		return domainErrors.NewDatabaseExecuteError(err, "failed to invalidate earlier codes")
	}

	codeModel := &model.VerificationCodeModel{
		ID:        code.ID,
		UserID:    code.UserID,
		Kind:      string(code.Kind),
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
	}

	if err := r.db.WithContext(ctx).Create(codeModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	code.ID = codeModel.ID
	code.CreatedAt = codeModel.CreatedAt

	return nil
}

// FindActive retrieves the newest unused, unexpired code of a kind for a user.
func (r *verificationRepository) FindActive(ctx context.Context, userID uuid.UUID, kind entity.VerificationKind) (*entity.VerificationCode, error) {
	var codeModel model.VerificationCodeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND used_at IS NULL AND expires_at > ?", userID, string(kind), time.Now()).
		Order("created_at DESC").
		First(&codeModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find verification code")
	}

	return &entity.VerificationCode{
		ID:        codeModel.ID,
		UserID:    codeModel.UserID,
		Kind:      entity.VerificationKind(codeModel.Kind),
		Code:      codeModel.Code,
		ExpiresAt: codeModel.ExpiresAt,
		UsedAt:    codeModel.UsedAt,
		CreatedAt: codeModel.CreatedAt,
	}, nil
}

// MarkUsed stamps a code as consumed.
func (r *verificationRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to mark code used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}
