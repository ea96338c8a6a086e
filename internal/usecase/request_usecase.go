package usecase

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// SendRequestInput raises a new request from a homeowner to a designer.
type SendRequestInput struct {
	HomeownerID uuid.UUID
	ProjectID   uuid.UUID
	DesignerID  uuid.UUID
	Message     string
}

// SubmitProposalInput answers a request with a proposal.
type SubmitProposalInput struct {
	DesignerID   uuid.UUID
	RequestID    uuid.UUID
	Summary      string
	PriceCents   int64
	LeadTimeDays int
}

// RequestUsecase drives the request/proposal negotiation between
// homeowners and designers.
type RequestUsecase interface {
	// SendRequest creates a request in the "sent" state.
	SendRequest(ctx context.Context, input *SendRequestInput) (*entity.Request, error)

	// ListProjectRequests returns the requests raised under one of the
	// homeowner's projects.
	ListProjectRequests(ctx context.Context, homeownerID, projectID uuid.UUID) ([]*entity.Request, error)

	// ListProjectProposals returns all proposals answering a project's requests.
	ListProjectProposals(ctx context.Context, homeownerID, projectID uuid.UUID) ([]*entity.Proposal, error)

	// AcceptProposal accepts one proposal, closes its request and rejects
	// sibling proposals atomically.
	AcceptProposal(ctx context.Context, homeownerID, proposalID uuid.UUID) (*entity.Proposal, error)

	// RejectProposal rejects one open proposal.
	RejectProposal(ctx context.Context, homeownerID, proposalID uuid.UUID) (*entity.Proposal, error)

	// ListDesignerRequests returns the requests addressed to the designer.
	ListDesignerRequests(ctx context.Context, designerID uuid.UUID) ([]*entity.Request, error)

	// GetRequest loads one request for the designer it is addressed to.
	GetRequest(ctx context.Context, designerID, requestID uuid.UUID) (*entity.Request, error)

	// DeclineRequest turns a sent request down.
	DeclineRequest(ctx context.Context, designerID, requestID uuid.UUID) (*entity.Request, error)

	// SubmitProposal answers a request and notifies the homeowner's devices.
	SubmitProposal(ctx context.Context, input *SubmitProposalInput) (*entity.Proposal, error)
}
