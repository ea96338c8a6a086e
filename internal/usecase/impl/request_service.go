package impl

import (
	"context"
	"log/slog"

	deliverycontext "rituality/internal/delivery/context"
	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/domain/service"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	requestRepo  repository.RequestRepository
	deviceRepo   repository.DeviceRepository
	pushSender   service.PushSender
	logger       *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	PropertyRepo repository.PropertyRepository
	RequestRepo  repository.RequestRepository
	DeviceRepo   repository.DeviceRepository
	PushSender   service.PushSender
	Logger       *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		propertyRepo: params.PropertyRepo,
		requestRepo:  params.RequestRepo,
		deviceRepo:   params.DeviceRepo,
		pushSender:   params.PushSender,
		logger:       params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendRequest creates a request in the "sent" state. The project must belong
// to the calling homeowner and the target must be a designer account.
func (srv *requestService) SendRequest(ctx context.Context, input *usecase.SendRequestInput) (*entity.Request, error) {
	project, err := srv.propertyRepo.FindProjectByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to load project")
	}
	if project.HomeownerID != input.HomeownerID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "project not found")
	}

	designer, err := srv.userRepo.FindByID(ctx, input.DesignerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "designer not found")
		}

		return nil, errors.Wrap(err, "failed to load designer")
	}
	if designer.UserType != entity.UserTypeDesigner {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "target account is not a designer")
	}

	request := &entity.Request{
		ProjectID:   input.ProjectID,
		HomeownerID: input.HomeownerID,
		DesignerID:  input.DesignerID,
		Message:     input.Message,
		Status:      entity.RequestStatusSent,
	}

	if err := srv.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	srv.log(ctx).Info("Request sent", slog.Any("requestID", request.ID), slog.Any("designerID", input.DesignerID))

	return request, nil
}

// ListProjectRequests returns the requests raised under one of the
// homeowner's projects.
func (srv *requestService) ListProjectRequests(ctx context.Context, homeownerID, projectID uuid.UUID) ([]*entity.Request, error) {
	if err := srv.checkProjectOwnership(ctx, homeownerID, projectID); err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.FindRequestsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ListProjectProposals returns all proposals answering a project's requests.
func (srv *requestService) ListProjectProposals(ctx context.Context, homeownerID, projectID uuid.UUID) ([]*entity.Proposal, error) {
	if err := srv.checkProjectOwnership(ctx, homeownerID, projectID); err != nil {
		return nil, err
	}

	proposals, err := srv.requestRepo.FindProposalsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list proposals")
	}

	return proposals, nil
}

// AcceptProposal accepts one proposal, closes its request and rejects the
// sibling proposals in a single transaction.
func (srv *requestService) AcceptProposal(ctx context.Context, homeownerID, proposalID uuid.UUID) (*entity.Proposal, error) {
	var accepted *entity.Proposal

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()

		proposal, request, loadErr := srv.loadProposalForHomeowner(ctx, requestRepo, homeownerID, proposalID)
		if loadErr != nil {
			return loadErr
		}
		if !proposal.Open() {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "proposal is not open")
		}

		proposal.Status = entity.ProposalStatusAccepted
		if updateErr := requestRepo.UpdateProposal(ctx, proposal); updateErr != nil {
			return errors.Wrap(updateErr, "failed to accept proposal")
		}

		request.Status = entity.RequestStatusClosed
		if updateErr := requestRepo.UpdateRequest(ctx, request); updateErr != nil {
			return errors.Wrap(updateErr, "failed to close request")
		}

		siblings, listErr := requestRepo.FindProposalsByRequest(ctx, request.ID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list sibling proposals")
		}
		for _, sibling := range siblings {
			if sibling.ID == proposal.ID || !sibling.Open() {
				continue
			}
			sibling.Status = entity.ProposalStatusRejected
			if updateErr := requestRepo.UpdateProposal(ctx, sibling); updateErr != nil {
				return errors.Wrap(updateErr, "failed to reject sibling proposal")
			}
		}

		accepted = proposal

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to accept proposal", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute proposal acceptance transaction")
	}

	srv.log(ctx).Info("Proposal accepted", slog.Any("proposalID", proposalID))

	return accepted, nil
}

// RejectProposal rejects one open proposal.
func (srv *requestService) RejectProposal(ctx context.Context, homeownerID, proposalID uuid.UUID) (*entity.Proposal, error) {
	proposal, _, err := srv.loadProposalForHomeowner(ctx, srv.requestRepo, homeownerID, proposalID)
	if err != nil {
		return nil, err
	}
	if !proposal.Open() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStateTransition, "proposal is not open")
	}

	proposal.Status = entity.ProposalStatusRejected
	if err := srv.requestRepo.UpdateProposal(ctx, proposal); err != nil {
		return nil, errors.Wrap(err, "failed to reject proposal")
	}

	return proposal, nil
}

// ListDesignerRequests returns the requests addressed to the designer.
func (srv *requestService) ListDesignerRequests(ctx context.Context, designerID uuid.UUID) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.FindRequestsByDesigner(ctx, designerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list designer requests")
	}

	return requests, nil
}

// GetRequest loads one request for the designer it is addressed to.
func (srv *requestService) GetRequest(ctx context.Context, designerID, requestID uuid.UUID) (*entity.Request, error) {
	return srv.loadRequestForDesigner(ctx, designerID, requestID)
}

// DeclineRequest turns a sent request down.
func (srv *requestService) DeclineRequest(ctx context.Context, designerID, requestID uuid.UUID) (*entity.Request, error) {
	request, err := srv.loadRequestForDesigner(ctx, designerID, requestID)
	if err != nil {
		return nil, err
	}
	if !request.CanDecline() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStateTransition, "request cannot be declined")
	}

	request.Status = entity.RequestStatusDeclined
	if err := srv.requestRepo.UpdateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to decline request")
	}

	srv.log(ctx).Info("Request declined", slog.Any("requestID", requestID))

	return request, nil
}

// SubmitProposal answers a request with a proposal and pushes a best-effort
// notification to the homeowner's active devices.
func (srv *requestService) SubmitProposal(ctx context.Context, input *usecase.SubmitProposalInput) (*entity.Proposal, error) {
	proposal := &entity.Proposal{
		RequestID:    input.RequestID,
		DesignerID:   input.DesignerID,
		Summary:      input.Summary,
		PriceCents:   input.PriceCents,
		LeadTimeDays: input.LeadTimeDays,
		Status:       entity.ProposalStatusSent,
	}

	var homeownerID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()

		request, findErr := requestRepo.FindRequestByID(ctx, input.RequestID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "request not found")
			}

			return errors.Wrap(findErr, "failed to load request")
		}
		if request.DesignerID != input.DesignerID {
			return errors.Wrap(domainerrors.ErrNotFound, "request not found")
		}
		if !request.CanPropose() {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "request does not accept proposals")
		}

		if createErr := requestRepo.CreateProposal(ctx, proposal); createErr != nil {
			return errors.Wrap(createErr, "failed to create proposal")
		}

		request.Status = entity.RequestStatusProposed
		if updateErr := requestRepo.UpdateRequest(ctx, request); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark request proposed")
		}

		homeownerID = request.HomeownerID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to submit proposal", slog.Any("requestID", input.RequestID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute proposal submission transaction")
	}

	srv.notifyProposalArrived(ctx, homeownerID, proposal)

	return proposal, nil
}

// notifyProposalArrived pushes to the homeowner's devices. Push is strictly
// best-effort; failures never surface to the designer.
func (srv *requestService) notifyProposalArrived(ctx context.Context, homeownerID uuid.UUID, proposal *entity.Proposal) {
	devices, err := srv.deviceRepo.FindActiveByUserID(ctx, homeownerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load devices for push", slog.Any("homeownerID", homeownerID), slog.Any("error", err))

		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return
	}

	err = srv.pushSender.SendToTokens(ctx, tokens,
		"New proposal received",
		"A designer answered one of your project requests.",
		map[string]string{"proposalId": proposal.ID.String(), "requestId": proposal.RequestID.String()},
	)
	if err != nil {
		srv.log(ctx).Warn("Failed to push proposal notification", slog.Any("homeownerID", homeownerID), slog.Any("error", err))
	}
}

func (srv *requestService) checkProjectOwnership(ctx context.Context, homeownerID, projectID uuid.UUID) error {
	project, err := srv.propertyRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "project not found")
		}

		return errors.Wrap(err, "failed to load project")
	}
	if project.HomeownerID != homeownerID {
		return errors.Wrap(domainerrors.ErrNotFound, "project not found")
	}

	return nil
}

// loadProposalForHomeowner resolves proposal -> request and checks the
// request belongs to the calling homeowner.
func (srv *requestService) loadProposalForHomeowner(ctx context.Context, requestRepo repository.RequestRepository, homeownerID, proposalID uuid.UUID) (*entity.Proposal, *entity.Request, error) {
	proposal, err := requestRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "proposal not found")
		}

		return nil, nil, errors.Wrap(err, "failed to load proposal")
	}

	request, err := requestRepo.FindRequestByID(ctx, proposal.RequestID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load request for proposal")
	}
	if request.HomeownerID != homeownerID {
		return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "proposal not found")
	}

	return proposal, request, nil
}

func (srv *requestService) loadRequestForDesigner(ctx context.Context, designerID, requestID uuid.UUID) (*entity.Request, error) {
	request, err := srv.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "request not found")
		}

		return nil, errors.Wrap(err, "failed to load request")
	}
	if request.DesignerID != designerID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "request not found")
	}

	return request, nil
}
