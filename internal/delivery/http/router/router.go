// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rituality/internal/delivery/http/middleware"
	"rituality/internal/delivery/http/router/handler"
	"rituality/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams bundles every handler the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	HomeownerHandler *handler.HomeownerHandler
	ProviderHandler  *handler.ProviderHandler
	RequestHandler   *handler.RequestHandler
	SearchHandler    *handler.SearchHandler
	UploadHandler    *handler.UploadHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate

	e.GET("/health", p.HealthHandler.Check)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/verify-email", p.AuthHandler.VerifyEmail, authed)
		authGroup.POST("/resend-verification", p.AuthHandler.ResendVerification, authed)
		authGroup.POST("/refresh-token", p.AuthHandler.RefreshToken)
		authGroup.POST("/forgot-password", p.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", p.AuthHandler.ResetPassword)
		authGroup.POST("/logout", p.AuthHandler.Logout, authed)
		authGroup.POST("/logout-all", p.AuthHandler.LogoutAll, authed)
	}

	userGroup := api.Group("/users", authed)
	{
		userGroup.GET("/me", p.UserHandler.GetMe)
		userGroup.PATCH("/me/permissions", p.UserHandler.UpdatePermissions)
		userGroup.GET("/me/devices", p.UserHandler.ListDevices)
		userGroup.DELETE("/me/devices/:deviceId", p.UserHandler.RevokeDevice)
	}

	homeownerGroup := api.Group("/homeowners", authed, p.AuthMiddleware.RequireUserType(entity.UserTypeHomeowner))
	{
		homeownerGroup.GET("/me", p.HomeownerHandler.GetProfile)
		homeownerGroup.POST("/me", p.HomeownerHandler.CreateProfile)
		homeownerGroup.PATCH("/me", p.HomeownerHandler.UpdateProfile)
		homeownerGroup.GET("/me/properties", p.HomeownerHandler.ListProperties)
		homeownerGroup.POST("/me/properties", p.HomeownerHandler.CreateProperty)
		homeownerGroup.PATCH("/me/properties/:propertyId", p.HomeownerHandler.UpdateProperty)
		homeownerGroup.DELETE("/me/properties/:propertyId", p.HomeownerHandler.DeleteProperty)
		homeownerGroup.GET("/me/projects", p.HomeownerHandler.ListProjects)
		homeownerGroup.POST("/me/projects", p.HomeownerHandler.CreateProject)
	}

	designerGroup := api.Group("/designers", authed, p.AuthMiddleware.RequireUserType(entity.UserTypeDesigner))
	{
		designerGroup.GET("/me", p.ProviderHandler.GetDesignerProfile)
		designerGroup.POST("/me", p.ProviderHandler.CreateDesignerProfile)
		designerGroup.PATCH("/me", p.ProviderHandler.UpdateDesignerProfile)
	}

	contractorGroup := api.Group("/contractors", authed, p.AuthMiddleware.RequireUserType(entity.UserTypeContractor))
	{
		contractorGroup.GET("/me", p.ProviderHandler.GetContractorProfile)
		contractorGroup.POST("/me", p.ProviderHandler.CreateContractorProfile)
		contractorGroup.PATCH("/me", p.ProviderHandler.UpdateContractorProfile)
	}

	requestGroup := api.Group("/requests", authed)
	{
		homeownerOnly := p.AuthMiddleware.RequireUserType(entity.UserTypeHomeowner)
		designerOnly := p.AuthMiddleware.RequireUserType(entity.UserTypeDesigner)

		requestGroup.POST("", p.RequestHandler.Send, homeownerOnly)
		requestGroup.GET("/project/:projectId", p.RequestHandler.ListByProject, homeownerOnly)
		requestGroup.GET("/project/:projectId/proposals", p.RequestHandler.ListProposalsByProject, homeownerOnly)
		requestGroup.POST("/proposals/:proposalId/accept", p.RequestHandler.AcceptProposal, homeownerOnly)
		requestGroup.POST("/proposals/:proposalId/reject", p.RequestHandler.RejectProposal, homeownerOnly)

		requestGroup.GET("/designer", p.RequestHandler.ListForDesigner, designerOnly)
		requestGroup.GET("/:requestId", p.RequestHandler.Get, designerOnly)
		requestGroup.POST("/:requestId/decline", p.RequestHandler.Decline, designerOnly)
		requestGroup.POST("/:requestId/proposal", p.RequestHandler.SubmitProposal, designerOnly)
	}

	searchGroup := api.Group("/search")
	{
		searchGroup.GET("/designers", p.SearchHandler.Designers)
		searchGroup.GET("/contractors", p.SearchHandler.Contractors)
	}

	api.POST("/upload", p.UploadHandler.Upload, authed)
}
