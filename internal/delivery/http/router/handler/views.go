package handler

import (
	"time"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// View models keep wire shapes stable and keep credential material out of
// responses; entities never marshal directly.

type userView struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	UserType       entity.UserType  `json:"userType"`
	ProfileCreated bool             `json:"profileCreated"`
	EmailVerified  bool             `json:"emailVerified"`
	Permissions    *permissionsView `json:"permissions,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

type permissionsView struct {
	CalendarAccess     bool `json:"calendarAccess"`
	NotificationAccess bool `json:"notificationAccess"`
	ContactsAccess     bool `json:"contactsAccess"`
	LocationAccess     bool `json:"locationAccess"`
	MarketingOptIn     bool `json:"marketingOptIn"`
	RitualOptIn        bool `json:"ritualOptIn"`
	CommunityOptIn     bool `json:"communityOptIn"`
}

type deviceView struct {
	ID         uuid.UUID `json:"id"`
	DeviceType string    `json:"deviceType"`
	DeviceName string    `json:"deviceName"`
	UserAgent  string    `json:"userAgent"`
	IPAddress  string    `json:"ipAddress"`
	LastUsedAt time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

type homeownerProfileView struct {
	Phone string `json:"phone"`
	City  string `json:"city"`
	Bio   string `json:"bio"`
}

type providerProfileView struct {
	Phone     string   `json:"phone"`
	City      string   `json:"city"`
	Bio       string   `json:"bio"`
	Tags      []string `json:"tags"`
	BudgetMin int      `json:"budgetMin"`
	BudgetMax int      `json:"budgetMax"`
	Verified  bool     `json:"verified"`
}

type propertyView struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	AddressLine  string    `json:"addressLine"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postalCode"`
	PropertyType string    `json:"propertyType"`
	Rooms        int       `json:"rooms"`
	AreaSqm      float64   `json:"areaSqm"`
}

type projectView struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"propertyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BudgetMin   int       `json:"budgetMin"`
	BudgetMax   int       `json:"budgetMax"`
	CreatedAt   time.Time `json:"createdAt"`
}

type requestView struct {
	ID          uuid.UUID            `json:"id"`
	ProjectID   uuid.UUID            `json:"projectId"`
	HomeownerID uuid.UUID            `json:"homeownerId"`
	DesignerID  uuid.UUID            `json:"designerId"`
	Message     string               `json:"message"`
	Status      entity.RequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

type proposalView struct {
	ID           uuid.UUID             `json:"id"`
	RequestID    uuid.UUID             `json:"requestId"`
	DesignerID   uuid.UUID             `json:"designerId"`
	Summary      string                `json:"summary"`
	PriceCents   int64                 `json:"priceCents"`
	LeadTimeDays int                   `json:"leadTimeDays"`
	Status       entity.ProposalStatus `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func toUserView(user *entity.User) userView {
	view := userView{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		UserType:       user.UserType,
		ProfileCreated: user.ProfileCreated,
		EmailVerified:  user.EmailVerified(),
		CreatedAt:      user.CreatedAt,
	}
	if user.Permissions != nil {
		permissions := toPermissionsView(user.Permissions)
		view.Permissions = &permissions
	}

	return view
}

func toPermissionsView(perms *entity.UserPermissions) permissionsView {
	return permissionsView{
		CalendarAccess:     perms.CalendarAccess,
		NotificationAccess: perms.NotificationAccess,
		ContactsAccess:     perms.ContactsAccess,
		LocationAccess:     perms.LocationAccess,
		MarketingOptIn:     perms.MarketingOptIn,
		RitualOptIn:        perms.RitualOptIn,
		CommunityOptIn:     perms.CommunityOptIn,
	}
}

func toDeviceView(device *entity.UserDevice) deviceView {
	return deviceView{
		ID:         device.ID,
		DeviceType: device.DeviceType,
		DeviceName: device.DeviceName,
		UserAgent:  device.UserAgent,
		IPAddress:  device.IPAddress,
		LastUsedAt: device.LastUsedAt,
		CreatedAt:  device.CreatedAt,
	}
}

func toDeviceViews(devices []*entity.UserDevice) []deviceView {
	views := make([]deviceView, 0, len(devices))
	for _, device := range devices {
		views = append(views, toDeviceView(device))
	}

	return views
}

func toHomeownerProfileView(profile *entity.HomeownerProfile) homeownerProfileView {
	return homeownerProfileView{
		Phone: profile.Phone,
		City:  profile.City,
		Bio:   profile.Bio,
	}
}

func toDesignerProfileView(profile *entity.DesignerProfile) providerProfileView {
	return providerProfileView{
		Phone:     profile.Phone,
		City:      profile.City,
		Bio:       profile.Bio,
		Tags:      profile.Styles,
		BudgetMin: profile.BudgetMin,
		BudgetMax: profile.BudgetMax,
		Verified:  profile.Verified,
	}
}

func toContractorProfileView(profile *entity.ContractorProfile) providerProfileView {
	return providerProfileView{
		Phone:     profile.Phone,
		City:      profile.City,
		Bio:       profile.Bio,
		Tags:      profile.Trades,
		BudgetMin: profile.BudgetMin,
		BudgetMax: profile.BudgetMax,
		Verified:  profile.Verified,
	}
}

func toPropertyView(property *entity.Property) propertyView {
	return propertyView{
		ID:           property.ID,
		Label:        property.Label,
		AddressLine:  property.AddressLine,
		City:         property.City,
		PostalCode:   property.PostalCode,
		PropertyType: property.PropertyType,
		Rooms:        property.Rooms,
		AreaSqm:      property.AreaSqm,
	}
}

func toPropertyViews(properties []*entity.Property) []propertyView {
	views := make([]propertyView, 0, len(properties))
	for _, property := range properties {
		views = append(views, toPropertyView(property))
	}

	return views
}

func toProjectView(project *entity.Project) projectView {
	return projectView{
		ID:          project.ID,
		PropertyID:  project.PropertyID,
		Title:       project.Title,
		Description: project.Description,
		BudgetMin:   project.BudgetMin,
		BudgetMax:   project.BudgetMax,
		CreatedAt:   project.CreatedAt,
	}
}

func toProjectViews(projects []*entity.Project) []projectView {
	views := make([]projectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, toProjectView(project))
	}

	return views
}

func toRequestView(request *entity.Request) requestView {
	return requestView{
		ID:          request.ID,
		ProjectID:   request.ProjectID,
		HomeownerID: request.HomeownerID,
		DesignerID:  request.DesignerID,
		Message:     request.Message,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
	}
}

func toRequestViews(requests []*entity.Request) []requestView {
	views := make([]requestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, toRequestView(request))
	}

	return views
}

func toProposalView(proposal *entity.Proposal) proposalView {
	return proposalView{
		ID:           proposal.ID,
		RequestID:    proposal.RequestID,
		DesignerID:   proposal.DesignerID,
		Summary:      proposal.Summary,
		PriceCents:   proposal.PriceCents,
		LeadTimeDays: proposal.LeadTimeDays,
		Status:       proposal.Status,
		CreatedAt:    proposal.CreatedAt,
	}
}

func toProposalViews(proposals []*entity.Proposal) []proposalView {
	views := make([]proposalView, 0, len(proposals))
	for _, proposal := range proposals {
		views = append(views, toProposalView(proposal))
	}

	return views
}
