// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks the lifecycle of a homeowner's request to a designer.
type RequestStatus string

const (
	// RequestStatusSent is the initial state of every request.
	RequestStatusSent RequestStatus = "sent"
	// RequestStatusDeclined means the designer turned the request down.
	RequestStatusDeclined RequestStatus = "declined"
	// RequestStatusProposed means the designer answered with a proposal.
	RequestStatusProposed RequestStatus = "proposed"
	// RequestStatusClosed means a proposal on this request was accepted.
	RequestStatusClosed RequestStatus = "closed"
)

// ProposalStatus tracks the lifecycle of a designer's proposal.
type ProposalStatus string

const (
	// ProposalStatusSent is the initial state of every proposal.
	ProposalStatusSent ProposalStatus = "sent"
	// ProposalStatusAccepted means the homeowner accepted the proposal.
	ProposalStatusAccepted ProposalStatus = "accepted"
	// ProposalStatusRejected means the homeowner rejected the proposal.
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Request is a homeowner-initiated request tied to a project, addressed to a designer.
type Request struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	HomeownerID uuid.UUID
	DesignerID  uuid.UUID
	Message     string
	Status      RequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanDecline reports whether the designer may still decline this request.
func (r *Request) CanDecline() bool {
	return r.Status == RequestStatusSent
}

// CanPropose reports whether the designer may still answer with a proposal.
func (r *Request) CanPropose() bool {
	return r.Status == RequestStatusSent || r.Status == RequestStatusProposed
}

// Proposal is a designer's response to a homeowner's project request.
type Proposal struct {
	ID           uuid.UUID
	RequestID    uuid.UUID
	DesignerID   uuid.UUID
	Summary      string
	PriceCents   int64
	LeadTimeDays int
	Status       ProposalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the homeowner can still accept or reject this proposal.
func (p *Proposal) Open() bool {
	return p.Status == ProposalStatusSent
}
