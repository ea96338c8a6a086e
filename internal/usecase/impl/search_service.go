package impl

import (
	"context"
	"log/slog"

	deliverycontext "rituality/internal/delivery/context"
	"rituality/internal/domain/service"
	"rituality/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface. It is a thin pass
// through; the verified-only filter and pagination defaults live in the
// index client so no caller can bypass them.
type searchService struct {
	index  service.SearchService
	logger *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Index  service.SearchService
	Logger *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		index:  params.Index,
		logger: params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchDesigners queries the designer collection.
func (srv *searchService) SearchDesigners(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	result, err := srv.index.SearchDesigners(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Designer search failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "designer search failed")
	}

	return result, nil
}

// SearchContractors queries the contractor collection.
func (srv *searchService) SearchContractors(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	result, err := srv.index.SearchContractors(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Contractor search failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "contractor search failed")
	}

	return result, nil
}
