package usecase

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// DesignerProfileInput carries the designer profile fields. The verified
// flag is absent on purpose: it is admin-set only.
type DesignerProfileInput struct {
	UserID    uuid.UUID
	Phone     string
	City      string
	Bio       string
	Styles    []string
	BudgetMin int
	BudgetMax int
}

// ContractorProfileInput carries the contractor profile fields.
type ContractorProfileInput struct {
	UserID    uuid.UUID
	Phone     string
	City      string
	Bio       string
	Trades    []string
	BudgetMin int
	BudgetMax int
}

// ProviderUsecase defines profile operations for the two provider types.
type ProviderUsecase interface {
	GetDesignerProfile(ctx context.Context, userID uuid.UUID) (*entity.DesignerProfile, error)
	CreateDesignerProfile(ctx context.Context, input *DesignerProfileInput) (*entity.DesignerProfile, error)
	UpdateDesignerProfile(ctx context.Context, input *DesignerProfileInput) (*entity.DesignerProfile, error)

	GetContractorProfile(ctx context.Context, userID uuid.UUID) (*entity.ContractorProfile, error)
	CreateContractorProfile(ctx context.Context, input *ContractorProfileInput) (*entity.ContractorProfile, error)
	UpdateContractorProfile(ctx context.Context, input *ContractorProfileInput) (*entity.ContractorProfile, error)
}
