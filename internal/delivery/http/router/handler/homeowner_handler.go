package handler

import (
	"log/slog"
	"net/http"

	"rituality/internal/delivery/http/response"
	"rituality/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HomeownerHandler holds dependencies for homeowner-scoped handlers.
type HomeownerHandler struct {
	uc     usecase.HomeownerUsecase
	logger *slog.Logger
}

// NewHomeownerHandler is the constructor for HomeownerHandler, injected by Fx.
func NewHomeownerHandler(uc usecase.HomeownerUsecase, logger *slog.Logger) *HomeownerHandler {
	return &HomeownerHandler{
		uc:     uc,
		logger: logger,
	}
}

type homeownerProfileRequest struct {
	Phone string `json:"phone" validate:"max=32"`
	City  string `json:"city" validate:"max=120"`
	Bio   string `json:"bio" validate:"max=2000"`
}

type propertyRequest struct {
	Label        string  `json:"label" validate:"required,max=120"`
	AddressLine  string  `json:"addressLine" validate:"required,max=255"`
	City         string  `json:"city" validate:"required,max=120"`
	PostalCode   string  `json:"postalCode" validate:"max=16"`
	PropertyType string  `json:"propertyType" validate:"required,oneof=house apartment condo townhouse other"`
	Rooms        int     `json:"rooms" validate:"gte=0,lte=200"`
	AreaSqm      float64 `json:"areaSqm" validate:"gte=0"`
}

type projectRequest struct {
	PropertyID  string `json:"propertyId" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	BudgetMin   int    `json:"budgetMin" validate:"gte=0"`
	BudgetMax   int    `json:"budgetMax" validate:"gte=0,gtefield=BudgetMin"`
}

// GetProfile returns the homeowner profile.
func (h *HomeownerHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHomeownerProfileView(profile), "")
}

// CreateProfile creates the homeowner profile.
func (h *HomeownerHandler) CreateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req homeownerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), &usecase.HomeownerProfileInput{
		UserID: userID,
		Phone:  req.Phone,
		City:   req.City,
		Bio:    req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toHomeownerProfileView(profile), "Profile created")
}

// UpdateProfile modifies the homeowner profile.
func (h *HomeownerHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req homeownerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.HomeownerProfileInput{
		UserID: userID,
		Phone:  req.Phone,
		City:   req.City,
		Bio:    req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHomeownerProfileView(profile), "Profile updated")
}

// ListProperties returns the caller's properties.
func (h *HomeownerHandler) ListProperties(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	properties, err := h.uc.ListProperties(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPropertyViews(properties), "")
}

// CreateProperty adds a property to the caller's inventory.
func (h *HomeownerHandler) CreateProperty(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), &usecase.PropertyInput{
		HomeownerID:  userID,
		Label:        req.Label,
		AddressLine:  req.AddressLine,
		City:         req.City,
		PostalCode:   req.PostalCode,
		PropertyType: req.PropertyType,
		Rooms:        req.Rooms,
		AreaSqm:      req.AreaSqm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPropertyView(property), "Property created")
}

// UpdateProperty modifies one of the caller's properties.
func (h *HomeownerHandler) UpdateProperty(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	propertyID, err := pathUUID(c, "propertyId")
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.uc.UpdateProperty(c.Request().Context(), &usecase.PropertyInput{
		HomeownerID:  userID,
		PropertyID:   propertyID,
		Label:        req.Label,
		AddressLine:  req.AddressLine,
		City:         req.City,
		PostalCode:   req.PostalCode,
		PropertyType: req.PropertyType,
		Rooms:        req.Rooms,
		AreaSqm:      req.AreaSqm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPropertyView(property), "Property updated")
}

// DeleteProperty removes one of the caller's properties.
func (h *HomeownerHandler) DeleteProperty(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	propertyID, err := pathUUID(c, "propertyId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProperty(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted")
}

// ListProjects returns the caller's projects.
func (h *HomeownerHandler) ListProjects(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	projects, err := h.uc.ListProjects(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectViews(projects), "")
}

// CreateProject opens a project under one of the caller's properties.
func (h *HomeownerHandler) CreateProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	propertyID, err := parseUUIDField(req.PropertyID, "propertyId")
	if err != nil {
		return err
	}

	project, err := h.uc.CreateProject(c.Request().Context(), &usecase.ProjectInput{
		HomeownerID: userID,
		PropertyID:  propertyID,
		Title:       req.Title,
		Description: req.Description,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProjectView(project), "Project created")
}
