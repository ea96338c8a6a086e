package handler

import (
	"log/slog"
	"net/http"

	"rituality/internal/delivery/http/response"
	"rituality/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler serves the request/proposal negotiation endpoints.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendRequestRequest struct {
	ProjectID  string `json:"projectId" validate:"required,uuid"`
	DesignerID string `json:"designerId" validate:"required,uuid"`
	Message    string `json:"message" validate:"max=5000"`
}

type submitProposalRequest struct {
	Summary      string `json:"summary" validate:"required,max=5000"`
	PriceCents   int64  `json:"priceCents" validate:"gte=0"`
	LeadTimeDays int    `json:"leadTimeDays" validate:"gte=0,lte=3650"`
}

// Send raises a new request against one of the caller's projects.
func (h *RequestHandler) Send(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req sendRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	projectID, err := parseUUIDField(req.ProjectID, "projectId")
	if err != nil {
		return err
	}
	designerID, err := parseUUIDField(req.DesignerID, "designerId")
	if err != nil {
		return err
	}

	request, err := h.uc.SendRequest(c.Request().Context(), &usecase.SendRequestInput{
		HomeownerID: userID,
		ProjectID:   projectID,
		DesignerID:  designerID,
		Message:     req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRequestView(request), "Request sent")
}

// ListByProject returns the requests raised under one of the caller's projects.
func (h *RequestHandler) ListByProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		return err
	}

	requests, err := h.uc.ListProjectRequests(c.Request().Context(), userID, projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRequestViews(requests), "")
}

// ListProposalsByProject returns all proposals answering a project's requests.
func (h *RequestHandler) ListProposalsByProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		return err
	}

	proposals, err := h.uc.ListProjectProposals(c.Request().Context(), userID, projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProposalViews(proposals), "")
}

// AcceptProposal accepts one proposal, closing its request.
func (h *RequestHandler) AcceptProposal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	proposalID, err := pathUUID(c, "proposalId")
	if err != nil {
		return err
	}

	proposal, err := h.uc.AcceptProposal(c.Request().Context(), userID, proposalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProposalView(proposal), "Proposal accepted")
}

// RejectProposal rejects one open proposal.
func (h *RequestHandler) RejectProposal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	proposalID, err := pathUUID(c, "proposalId")
	if err != nil {
		return err
	}

	proposal, err := h.uc.RejectProposal(c.Request().Context(), userID, proposalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProposalView(proposal), "Proposal rejected")
}

// ListForDesigner returns the requests addressed to the calling designer.
func (h *RequestHandler) ListForDesigner(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.ListDesignerRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRequestViews(requests), "")
}

// Get returns one request addressed to the calling designer.
func (h *RequestHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requestID, err := pathUUID(c, "requestId")
	if err != nil {
		return err
	}

	request, err := h.uc.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRequestView(request), "")
}

// Decline turns a sent request down.
func (h *RequestHandler) Decline(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requestID, err := pathUUID(c, "requestId")
	if err != nil {
		return err
	}

	request, err := h.uc.DeclineRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRequestView(request), "Request declined")
}

// SubmitProposal answers a request with a proposal.
func (h *RequestHandler) SubmitProposal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requestID, err := pathUUID(c, "requestId")
	if err != nil {
		return err
	}

	var req submitProposalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	proposal, err := h.uc.SubmitProposal(c.Request().Context(), &usecase.SubmitProposalInput{
		DesignerID:   userID,
		RequestID:    requestID,
		Summary:      req.Summary,
		PriceCents:   req.PriceCents,
		LeadTimeDays: req.LeadTimeDays,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProposalView(proposal), "Proposal submitted")
}
