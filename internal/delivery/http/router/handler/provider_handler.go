package handler

import (
	"log/slog"
	"net/http"

	"rituality/internal/delivery/http/response"
	"rituality/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProviderHandler serves the designer and contractor profile endpoints.
type ProviderHandler struct {
	uc     usecase.ProviderUsecase
	logger *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{
		uc:     uc,
		logger: logger,
	}
}

// providerProfileRequest covers both designer and contractor profiles; tags
// carry styles or trades depending on the route. There is deliberately no
// verified field here.
type providerProfileRequest struct {
	Phone     string   `json:"phone" validate:"max=32"`
	City      string   `json:"city" validate:"max=120"`
	Bio       string   `json:"bio" validate:"max=2000"`
	Tags      []string `json:"tags" validate:"max=20,dive,max=60"`
	BudgetMin int      `json:"budgetMin" validate:"gte=0"`
	BudgetMax int      `json:"budgetMax" validate:"gte=0,gtefield=BudgetMin"`
}

// GetDesignerProfile returns the calling designer's profile.
func (h *ProviderHandler) GetDesignerProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetDesignerProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDesignerProfileView(profile), "")
}

// CreateDesignerProfile creates the calling designer's profile.
func (h *ProviderHandler) CreateDesignerProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req providerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.CreateDesignerProfile(c.Request().Context(), &usecase.DesignerProfileInput{
		UserID:    userID,
		Phone:     req.Phone,
		City:      req.City,
		Bio:       req.Bio,
		Styles:    req.Tags,
		BudgetMin: req.BudgetMin,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDesignerProfileView(profile), "Profile created")
}

// UpdateDesignerProfile modifies the calling designer's profile.
func (h *ProviderHandler) UpdateDesignerProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req providerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateDesignerProfile(c.Request().Context(), &usecase.DesignerProfileInput{
		UserID:    userID,
		Phone:     req.Phone,
		City:      req.City,
		Bio:       req.Bio,
		Styles:    req.Tags,
		BudgetMin: req.BudgetMin,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDesignerProfileView(profile), "Profile updated")
}

// GetContractorProfile returns the calling contractor's profile.
func (h *ProviderHandler) GetContractorProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetContractorProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContractorProfileView(profile), "")
}

// CreateContractorProfile creates the calling contractor's profile.
func (h *ProviderHandler) CreateContractorProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req providerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.CreateContractorProfile(c.Request().Context(), &usecase.ContractorProfileInput{
		UserID:    userID,
		Phone:     req.Phone,
		City:      req.City,
		Bio:       req.Bio,
		Trades:    req.Tags,
		BudgetMin: req.BudgetMin,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContractorProfileView(profile), "Profile created")
}

// UpdateContractorProfile modifies the calling contractor's profile.
func (h *ProviderHandler) UpdateContractorProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req providerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateContractorProfile(c.Request().Context(), &usecase.ContractorProfileInput{
		UserID:    userID,
		Phone:     req.Phone,
		City:      req.City,
		Bio:       req.Bio,
		Trades:    req.Tags,
		BudgetMin: req.BudgetMin,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContractorProfileView(profile), "Profile updated")
}
