package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"rituality/internal/delivery/http/response"
	"rituality/internal/domain/service"
	"rituality/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler serves the public provider search endpoints.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Designers queries the designer index. Public endpoint; only verified
// providers ever come back.
func (h *SearchHandler) Designers(c echo.Context) error {
	result, err := h.uc.SearchDesigners(c.Request().Context(), queryFromParams(c, "styles"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Contractors queries the contractor index.
func (h *SearchHandler) Contractors(c echo.Context) error {
	result, err := h.uc.SearchContractors(c.Request().Context(), queryFromParams(c, "trades"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// queryFromParams maps query string parameters onto a provider query.
// tagParam is "styles" for designers and "trades" for contractors.
func queryFromParams(c echo.Context, tagParam string) service.ProviderQuery {
	query := service.ProviderQuery{
		Query: c.QueryParam("q"),
		City:  c.QueryParam("city"),
	}

	if raw := c.QueryParam(tagParam); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				query.Tags = append(query.Tags, tag)
			}
		}
	}

	query.BudgetMin = intParam(c, "budgetMin")
	query.BudgetMax = intParam(c, "budgetMax")
	query.Page = intParam(c, "page")
	query.PerPage = intParam(c, "perPage")

	return query
}

// intParam parses an optional numeric query parameter; garbage reads as zero
// and falls back to the index client's defaults.
func intParam(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value < 0 {
		return 0
	}

	return value
}
