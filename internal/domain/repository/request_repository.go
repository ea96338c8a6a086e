// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for request/proposal persistence.
var (
	// ErrRequestNotFound is returned when a request is not found.
	ErrRequestNotFound = errors.New("request not found")
	// ErrProposalNotFound is returned when a proposal is not found.
	ErrProposalNotFound = errors.New("proposal not found")
)

// RequestRepository defines persistence for homeowner requests and designer proposals.
type RequestRepository interface {
	// CreateRequest persists a new request in the "sent" state.
	CreateRequest(ctx context.Context, request *entity.Request) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// FindRequestsByProject retrieves all requests raised under a project.
	FindRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Request, error)

	// FindRequestsByDesigner retrieves all requests addressed to a designer.
	FindRequestsByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Request, error)

	// UpdateRequest modifies an existing request (status transitions).
	UpdateRequest(ctx context.Context, request *entity.Request) error

	// CreateProposal persists a new proposal in the "sent" state.
	CreateProposal(ctx context.Context, proposal *entity.Proposal) error

	// FindProposalByID retrieves a proposal by its unique ID.
	FindProposalByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)

	// FindProposalsByProject retrieves all proposals raised against a project's requests.
	FindProposalsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Proposal, error)

	// FindProposalsByRequest retrieves all proposals answering one request.
	FindProposalsByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Proposal, error)

	// UpdateProposal modifies an existing proposal (status transitions).
	UpdateProposal(ctx context.Context, proposal *entity.Proposal) error
}
