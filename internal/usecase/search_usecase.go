package usecase

import (
	"context"

	"rituality/internal/domain/service"
)

// SearchUsecase exposes the public provider search. Only verified providers
// are ever returned; the infra layer forces that filter.
type SearchUsecase interface {
	SearchDesigners(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error)
	SearchContractors(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error)
}
